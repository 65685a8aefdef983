// Package providers implements the provider registry: the compiled-in preset
// catalog, the user provider store and the merged view over both.
package providers

import "ccswitch/config/models"

// presets is the immutable ordered catalog of built-in providers. All
// endpoints speak the Anthropic messages protocol, either natively or through
// the vendor's compatibility gateway.
var presets = []models.ProviderPreset{
	{
		ID:          "anthropic",
		Name:        "anthropic",
		DisplayName: "Anthropic",
		BaseURL:     "https://api.anthropic.com",
		DefaultModels: []string{
			"claude-3-5-sonnet-20241022",
			"claude-3-5-haiku-20241022",
			"claude-3-opus-20240229",
		},
		AuthType:  models.AuthTypeAPIKey,
		RateLimit: &models.RateLimit{RequestsPerMinute: 50},
		Docs:      "https://docs.anthropic.com",
	},
	{
		ID:          "openrouter",
		Name:        "openrouter",
		DisplayName: "OpenRouter",
		BaseURL:     "https://openrouter.ai/api",
		DefaultModels: []string{
			"anthropic/claude-3.5-sonnet",
			"anthropic/claude-3.5-haiku",
		},
		AuthType: models.AuthTypeBearer,
		Docs:     "https://openrouter.ai/docs",
	},
	{
		ID:          "deepseek",
		Name:        "deepseek",
		DisplayName: "DeepSeek",
		BaseURL:     "https://api.deepseek.com/anthropic",
		DefaultModels: []string{
			"deepseek-chat",
			"deepseek-reasoner",
		},
		AuthType:  models.AuthTypeBearer,
		Docs:      "https://api-docs.deepseek.com",
		IsChinese: true,
	},
	{
		ID:          "zhipu",
		Name:        "zhipu",
		DisplayName: "Zhipu GLM",
		BaseURL:     "https://open.bigmodel.cn/api/anthropic",
		DefaultModels: []string{
			"glm-4.5",
			"glm-4.5-air",
		},
		AuthType:  models.AuthTypeBearer,
		Docs:      "https://docs.bigmodel.cn",
		IsChinese: true,
	},
	{
		ID:          "moonshot",
		Name:        "moonshot",
		DisplayName: "Moonshot Kimi",
		BaseURL:     "https://api.moonshot.cn/anthropic",
		DefaultModels: []string{
			"kimi-k2-0711-preview",
		},
		AuthType:  models.AuthTypeBearer,
		Docs:      "https://platform.moonshot.cn/docs",
		IsChinese: true,
	},
	{
		ID:          "qwen",
		Name:        "qwen",
		DisplayName: "Alibaba Qwen",
		BaseURL:     "https://dashscope.aliyuncs.com/api/v2/apps/claude-code-proxy",
		DefaultModels: []string{
			"qwen3-coder-plus",
		},
		AuthType:  models.AuthTypeBearer,
		Docs:      "https://help.aliyun.com/zh/model-studio",
		IsChinese: true,
	},
	{
		ID:          "siliconflow",
		Name:        "siliconflow",
		DisplayName: "SiliconFlow",
		BaseURL:     "https://api.siliconflow.cn",
		DefaultModels: []string{
			"deepseek-ai/DeepSeek-V3",
		},
		AuthType:  models.AuthTypeBearer,
		Docs:      "https://docs.siliconflow.cn",
		IsChinese: true,
	},
	{
		// Template for user-defined providers; not usable as-is because it
		// has no endpoint.
		ID:            models.CustomPresetID,
		Name:          "custom",
		DisplayName:   "Custom provider",
		BaseURL:       "",
		DefaultModels: []string{},
		AuthType:      models.AuthTypeCustom,
	},
}

// Presets returns the built-in catalog in its defined order. The result is a
// deep copy; callers may mutate it freely.
func Presets() []models.ProviderPreset {
	out := make([]models.ProviderPreset, len(presets))
	for i, p := range presets {
		out[i] = p.Clone()
	}
	return out
}

// GetPresetByID returns the built-in preset with the given id. Absence is a
// normal outcome, reported through the boolean.
func GetPresetByID(id string) (models.ProviderPreset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.ProviderPreset{}, false
}

// InternationalPresets returns the built-in presets that are not flagged
// Chinese, excluding the reserved custom template.
func InternationalPresets() []models.ProviderPreset {
	var out []models.ProviderPreset
	for _, p := range presets {
		if !p.IsChinese && p.ID != models.CustomPresetID {
			out = append(out, p.Clone())
		}
	}
	return out
}

// ChinesePresets returns the built-in presets flagged Chinese.
func ChinesePresets() []models.ProviderPreset {
	var out []models.ProviderPreset
	for _, p := range presets {
		if p.IsChinese {
			out = append(out, p.Clone())
		}
	}
	return out
}
