package appservice

import (
	"context"

	"github.com/khenritz/azsite/internal/appservice/models"
)

// keysAPIVersion pins the api-version of the two key-listing operations,
// which are not exposed by the structured management client and go through
// the raw ARM path instead. Both address the session's own resource id, so
// they are deliberately not slot-dispatched.
const keysAPIVersion = "2016-08-01"

// HostKeys fetches the function app's host-level secret keys.
func (s *Session) HostKeys(ctx context.Context) (models.HostKeys, error) {
	var keys models.HostKeys
	if err := s.arm.PostJSON(ctx, s.ID+"/host/default/listkeys", keysAPIVersion, nil, &keys); err != nil {
		return models.HostKeys{}, err
	}
	return keys, nil
}

// FunctionKeys fetches one function's secret keys, keyed by name. The
// reserved "default" key is included.
func (s *Session) FunctionKeys(ctx context.Context, functionName string) (models.FunctionKeys, error) {
	var keys models.FunctionKeys
	if err := s.arm.PostJSON(ctx, s.ID+"/functions/"+functionName+"/listKeys", keysAPIVersion, nil, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}
