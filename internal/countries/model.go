package countries

// PageSize identifies a fixed output page geometry.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
)

// Dimensions returns the page width and height in inches, the unit the
// PDF engine expects.
func (p PageSize) Dimensions() (width, height float64) {
	switch p {
	case PageLetter:
		return 8.5, 11.0
	default:
		// A4: 210mm x 297mm
		return 8.27, 11.69
	}
}

// Valid reports whether p is a known page size.
func (p PageSize) Valid() bool {
	return p == PageA4 || p == PageLetter
}

// Margins holds page margins in inches.
type Margins struct {
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left" json:"left"`
}

// Rule is the formatting policy for one country. Rules are immutable after
// startup; Table hands out copies.
type Rule struct {
	Code                 string   `yaml:"code" json:"code"`
	Name                 string   `yaml:"name" json:"name"`
	PageSize             PageSize `yaml:"pageSize" json:"pageSize"`
	Margins              Margins  `yaml:"margins" json:"margins"`
	IncludePhoto         bool     `yaml:"includePhoto" json:"includePhoto"`
	IncludeDateOfBirth   bool     `yaml:"includeDateOfBirth" json:"includeDateOfBirth"`
	IncludeNationality   bool     `yaml:"includeNationality" json:"includeNationality"`
	IncludeMaritalStatus bool     `yaml:"includeMaritalStatus" json:"includeMaritalStatus"`
	Guideline            string   `yaml:"guideline,omitempty" json:"guideline,omitempty"`
}
