package cache

import (
	"strings"

	"github.com/khenritz/azsite/internal/appservice/models"
)

// siteKey builds the cache key for one site (or slot) within a
// subscription. Slashes in slot-qualified names are flattened so the key is
// a valid file name.
func siteKey(subscriptionID, resourceGroup, name string) string {
	flat := strings.ReplaceAll(name, "/", "_")
	return "site_" + subscriptionID + "_" + resourceGroup + "_" + flat
}

// GetSite reads a cached site descriptor. Returns false on miss or expiry.
func GetSite(s *Store, subscriptionID, resourceGroup, name string) (models.Site, bool) {
	var site models.Site
	ok := Get(s, siteKey(subscriptionID, resourceGroup, name), &site)
	return site, ok
}

// PutSite stores a resolved site descriptor.
func PutSite(s *Store, subscriptionID, resourceGroup string, site models.Site) error {
	return Set(s, siteKey(subscriptionID, resourceGroup, site.Name), site)
}

// InvalidateSite drops a cached descriptor, e.g. after a delete.
func InvalidateSite(s *Store, subscriptionID, resourceGroup, name string) {
	Invalidate(s, siteKey(subscriptionID, resourceGroup, name))
}
