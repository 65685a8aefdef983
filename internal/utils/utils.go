// Package utils holds small display and URL helpers shared by the command
// layer and the stores.
package utils

// MaskAPIKey masks an API key for display, keeping only the first and last
// four characters.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
