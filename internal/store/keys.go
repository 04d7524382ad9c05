package store

// Redis hash names consumed by the online serving side. These strings are a
// contract with the readers; a mismatch is a silent break that cannot be
// detected locally, so they are defined once here and nowhere else.
const (
	// KeyABParams holds AB experiment parameters, field "<key>:<kind>".
	KeyABParams = "cfg:exp:ab"

	// KeyDefaultChoice holds the default action choice per ad id.
	KeyDefaultChoice = "exp:default:adid:choices"

	// KeyTargetCTR holds the default target-CTR per action id.
	KeyTargetCTR = "cfg:exp:action:targetctr:default"

	// KeyVersionScoresPrefix prefixes the per-version score hashes; the
	// record key is appended as "<prefix>:<key>".
	KeyVersionScoresPrefix = "expversion:score:default"
)

// VersionScoresKey returns the hash name for one version's action scores.
func VersionScoresKey(version string) string {
	return KeyVersionScoresPrefix + ":" + version
}
