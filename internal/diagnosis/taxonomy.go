package diagnosis

import "github.com/abhisek/mathquest/internal/problemgen"

// Misconception describes a known slip in learner-facing words.
type Misconception struct {
	ID          problemgen.SlipID
	Label       string
	Description string
}

var seedMisconceptions = []Misconception{
	{
		ID:          problemgen.SlipSubtracted,
		Label:       "Subtracted instead of added",
		Description: "Looks like you took one number away. \"Got more\" means add.",
	},
	{
		ID:          problemgen.SlipSkippedExtra,
		Label:       "Extra items left out",
		Description: "You multiplied the packs correctly. Now add the extra pens.",
	},
	{
		ID:          problemgen.SlipAddedProduct,
		Label:       "Added instead of multiplied",
		Description: "Each pack holds several pens, so multiply packs by pens per pack.",
	},
	{
		ID:          problemgen.SlipSkippedBreak,
		Label:       "Break left out",
		Description: "Your driving time is right. Don't forget to add the break.",
	},
	{
		ID:          problemgen.SlipSkippedConversion,
		Label:       "Hours not converted",
		Description: "Distance ÷ speed gives hours. Multiply by 60 before adding the break.",
	},
	{
		ID:          problemgen.SlipSkippedFirstItem,
		Label:       "First item left out",
		Description: "You only counted the second item. Add the cost of the first one too.",
	},
	{
		ID:          problemgen.SlipSkippedSecondItem,
		Label:       "Second item left out",
		Description: "You only counted the first item. Add the cost of the second one too.",
	},
}

// registry is the package-level misconception registry, keyed by ID.
var registry map[problemgen.SlipID]*Misconception

func init() {
	registry = make(map[problemgen.SlipID]*Misconception, len(seedMisconceptions))
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		registry[m.ID] = m
	}
}

// GetMisconception returns a misconception by ID, or nil if not found.
func GetMisconception(id problemgen.SlipID) *Misconception {
	return registry[id]
}

// AllMisconceptions returns every misconception in seed order.
func AllMisconceptions() []*Misconception {
	result := make([]*Misconception, 0, len(seedMisconceptions))
	for i := range seedMisconceptions {
		result = append(result, &seedMisconceptions[i])
	}
	return result
}
