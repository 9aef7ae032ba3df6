package dataset

// Schema describes the fixed column layout of a raw churn dataset: which
// column carries the churn indicator, which columns are dropped before
// encoding, and which numeric-looking columns are treated as categorical.
type Schema struct {
	// Target is the name of the two-valued churn indicator column.
	Target string `yaml:"target" mapstructure:"target"`

	// PositiveValue is the target value encoded as label 1.
	PositiveValue string `yaml:"positive_value" mapstructure:"positive_value"`

	// DropColumns are removed before encoding: the identifier column and
	// the redundant derived numeric columns.
	DropColumns []string `yaml:"drop_columns" mapstructure:"drop_columns"`

	// CategoricalCasts are numeric-looking columns treated as categorical
	// and one-hot expanded instead of passed through.
	CategoricalCasts []string `yaml:"categorical_casts" mapstructure:"categorical_casts"`
}

// RequiredColumns returns the columns that must be present after parsing:
// the target and every categorical cast. Drop columns are validated by the
// clean stage instead.
func (s Schema) RequiredColumns() []string {
	required := make([]string, 0, 1+len(s.CategoricalCasts))
	required = append(required, s.Target)
	required = append(required, s.CategoricalCasts...)
	return required
}

// DefaultChurnSchema returns the schema of the telco customer churn
// dataset: Phone is the identifier, the four charge columns are linear
// functions of the corresponding minutes columns, Area Code is a numeric
// code with no ordinal meaning, and the churn indicator takes the two
// values "True." and "False.".
func DefaultChurnSchema() Schema {
	return Schema{
		Target:        "Churn?",
		PositiveValue: "True.",
		DropColumns: []string{
			"Phone",
			"Day Charge",
			"Eve Charge",
			"Night Charge",
			"Intl Charge",
		},
		CategoricalCasts: []string{"Area Code"},
	}
}
