package model

type Package struct {
	Slug        string        `json:"slug" yaml:"slug" validate:"required"`
	Name        LocalizedText `json:"name" yaml:"name" validate:"required"`
	Description LocalizedText `json:"description,omitempty" yaml:"description,omitempty"`
	Price       int64         `json:"price" yaml:"price" validate:"gte=0"`
}

// Reason is a canned, already-localized justification phrase. Key is the
// stable identity used for deduplication; Text is never compared.
type Reason struct {
	Key    string        `json:"key" yaml:"key" validate:"required"`
	Urgent bool          `json:"urgent,omitempty" yaml:"urgent,omitempty"`
	Text   LocalizedText `json:"text" yaml:"text" validate:"required"`
}

// Scores holds the risk accumulators of one resolution pass.
// Liver is a sub-signal and never selects a package on its own.
type Scores struct {
	Overall   int `json:"overall"`
	Cancer    int `json:"cancer"`
	Cardio    int `json:"cardio"`
	Digestive int `json:"digestive"`
	Metabolic int `json:"metabolic"`
	Brain     int `json:"brain"`
	Liver     int `json:"liver"`
}

type RecommendationResult struct {
	PackageSlug string        `json:"package_slug"`
	PackageName LocalizedText `json:"package_name"`
	Price       int64         `json:"price"`
	Reason      LocalizedText `json:"reason"`
	ReasonKeys  []string      `json:"reason_keys"`
	Scores      Scores        `json:"scores"`
}
