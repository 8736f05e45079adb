package advisor

import "strings"

// Normalizer resolves free-text disease mentions to a canonical category.
type Normalizer struct {
	cfg *Config
}

func NewNormalizer(cfg *Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Normalize trims and lower-cases the input, then looks it up verbatim in
// the synonym map. Synonyms must be enumerated explicitly; there is no
// partial matching.
func (n *Normalizer) Normalize(text string) (DiseaseCategory, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if cat, ok := n.cfg.Synonyms[key]; ok {
		return cat, nil
	}
	return "", &UnknownDiseaseError{Input: text, Supported: n.cfg.SupportedNames()}
}
