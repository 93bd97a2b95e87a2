package utils

import "time"

// Redis keys of the auth cache. A validated token is stored under
// AuthCachePrefix+hash with the professional id as value; a revoked token
// under AuthRevokedPrefix+hash until it would have expired.
const (
	AuthCachePrefix   = "auth:"
	AuthRevokedPrefix = AuthCachePrefix + "revoked:"
)

// AuthCacheTTL caps how long a validated token skips signature checks.
const AuthCacheTTL = 10 * time.Minute
