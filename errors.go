package nexAuth

import (
	"errors"

	"github.com/MrEthical07/nexAuth/internal/stores"
	"github.com/MrEthical07/nexAuth/keys"
	"github.com/MrEthical07/nexAuth/token"
)

var (
	// ErrTokenFieldsIncomplete is an exported constant or variable used by the token engine.
	ErrTokenFieldsIncomplete = token.ErrIncompleteFields
	// ErrTokenMalformed is an exported constant or variable used by the token engine.
	ErrTokenMalformed = token.ErrMalformed
	// ErrTokenIntegrity is an exported constant or variable used by the token engine.
	ErrTokenIntegrity = token.ErrIntegrity
	// ErrKeyNotFound is an exported constant or variable used by the token engine.
	ErrKeyNotFound = keys.ErrKeyNotFound
	// ErrRevocationUnavailable is an exported constant or variable used by the token engine.
	ErrRevocationUnavailable = stores.ErrRevocationRedisUnavailable

	// ErrTokenEncodingInvalid is an exported constant or variable used by the token engine.
	ErrTokenEncodingInvalid = errors.New("token text encoding invalid")
	// ErrTokenRevoked is an exported constant or variable used by the token engine.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrRevocationDisabled is an exported constant or variable used by the token engine.
	ErrRevocationDisabled = errors.New("revocation disabled")
	// ErrWebTokensDisabled is an exported constant or variable used by the token engine.
	ErrWebTokensDisabled = errors.New("web tokens disabled")
	// ErrWebTokenInvalid is an exported constant or variable used by the token engine.
	ErrWebTokenInvalid = errors.New("invalid web token")
	// ErrEngineNotReady is an exported constant or variable used by the token engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
