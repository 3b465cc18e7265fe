package platform

// GenericPlatform is the fallback target when no platform is specified.
const GenericPlatform = "generic"

// GetConfigOutput is a platform's formatting configuration. Config is the
// raw document; platforms without one get an empty mapping.
type GetConfigOutput struct {
	Name   string
	Config map[string]any
}
