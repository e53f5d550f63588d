package appservice

import (
	"context"
	"errors"
	"net/http"

	"github.com/khenritz/azsite/internal/appservice/models"
	"github.com/khenritz/azsite/internal/arm"
)

// Functions lists the first page of the app's functions. The platform has no
// slot variant for function listing; a slot session fails without a remote
// call.
func (s *Session) Functions(ctx context.Context) (models.FunctionCollection, error) {
	if s.IsSlot {
		return models.FunctionCollection{}, ErrSlotFunctionsNotSupported
	}
	c, err := s.client()
	if err != nil {
		return models.FunctionCollection{}, err
	}
	return c.ListFunctions(ctx, s.ResourceGroup, s.SiteName)
}

// FunctionsNext fetches the page behind a continuation link returned by
// Functions.
func (s *Session) FunctionsNext(ctx context.Context, nextLink string) (models.FunctionCollection, error) {
	if s.IsSlot {
		return models.FunctionCollection{}, ErrSlotFunctionsNotSupported
	}
	c, err := s.client()
	if err != nil {
		return models.FunctionCollection{}, err
	}
	return c.ListFunctionsNext(ctx, nextLink)
}

// Function fetches one function by name.
func (s *Session) Function(ctx context.Context, name string) (models.FunctionEnvelope, error) {
	if s.IsSlot {
		return models.FunctionEnvelope{}, ErrSlotFunctionsNotSupported
	}
	c, err := s.client()
	if err != nil {
		return models.FunctionEnvelope{}, err
	}
	return c.GetFunction(ctx, s.ResourceGroup, s.SiteName, name)
}

// DeleteFunction removes one function by name.
func (s *Session) DeleteFunction(ctx context.Context, name string) error {
	if s.IsSlot {
		return ErrSlotFunctionsNotSupported
	}
	c, err := s.client()
	if err != nil {
		return err
	}
	return c.DeleteFunction(ctx, s.ResourceGroup, s.SiteName, name)
}

// FunctionSecrets fetches one function's invocation secrets. Unlike listing,
// secrets do have a slot variant and follow the normal dispatch rule.
func (s *Session) FunctionSecrets(ctx context.Context, name string) (models.FunctionSecrets, error) {
	c, err := s.client()
	if err != nil {
		return models.FunctionSecrets{}, err
	}
	if s.IsSlot {
		return c.ListFunctionSecretsSlot(ctx, s.ResourceGroup, s.SiteName, name, s.SlotName)
	}
	return c.ListFunctionSecrets(ctx, s.ResourceGroup, s.SiteName, name)
}

// SyncFunctionTriggers asks the runtime to re-read trigger definitions.
//
// The platform is known to report success for this operation through the
// error channel with code 200; that shape is treated as a successful no-op.
// Any other failure propagates unchanged.
func (s *Session) SyncFunctionTriggers(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	if s.IsSlot {
		err = c.SyncFunctionTriggersSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	} else {
		err = c.SyncFunctionTriggers(ctx, s.ResourceGroup, s.SiteName)
	}
	if err != nil {
		var reqErr *arm.RequestError
		if errors.As(err, &reqErr) && (reqErr.Code == "200" || reqErr.StatusCode == http.StatusOK) {
			return nil
		}
		return err
	}
	return nil
}
