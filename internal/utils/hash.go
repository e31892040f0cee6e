package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// EntityChecksum computes the content fingerprint stored on a SyncMetadata
// row: a hex-encoded SHA-256 digest over the entityType/entityId/version
// triple.
//
// The checksum exists for integrity display only; conflict detection relies
// solely on the version number.
func EntityChecksum(entityType, entityID string, version int64) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s:%d", entityType, entityID, version))
	return hex.EncodeToString(sum[:])
}
