package config

// MaskSecret hides all but the edges of a credential. Short values are
// hidden entirely.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 12 {
		return "********"
	}
	return string(runes[:6]) + "…" + string(runes[len(runes)-4:])
}

// Redacted returns a copy of the record with every credential masked
func (c *ToolchainConfig) Redacted() *ToolchainConfig {
	out := c.Clone()

	if key, ok := out.Etherscan.APIKey.Get(); ok {
		out.Etherscan.APIKey = Some(MaskSecret(key))
	}
	out.GasReporter.CoinmarketcapKey = MaskSecret(out.GasReporter.CoinmarketcapKey)

	for name, profile := range out.Networks {
		for i, account := range profile.Accounts {
			profile.Accounts[i] = MaskSecret(account)
		}
		out.Networks[name] = profile
	}

	return out
}
