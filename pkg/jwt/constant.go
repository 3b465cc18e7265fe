package jwt

import "time"

// DefaultTTL is the token lifetime used when the configured TTL is invalid.
const DefaultTTL = 8 * time.Hour
