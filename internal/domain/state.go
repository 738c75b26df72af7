package domain

// SaveStateVersion is written into every save file.
const SaveStateVersion = "2"

// ItemRecord is the persisted form of an item. Kind is empty for items that
// have no catalog definition; those are resolved by name on load.
type ItemRecord struct {
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind,omitempty"`
}

// SaveState is the flattened snapshot written to the save file.
type SaveState struct {
	Version     string                  `json:"version" validate:"required"`
	CurrentRoom string                  `json:"current_room" validate:"required"`
	Inventory   []ItemRecord            `json:"inventory" validate:"dive"`
	Rooms       map[string][]ItemRecord `json:"rooms" validate:"required,dive,keys,required,endkeys,dive"`
	LeverPulled bool                    `json:"lever_pulled"`
	ChestOpened bool                    `json:"chest_opened"`
}

// RecordOf projects an item into its persisted form.
func RecordOf(item *Item) ItemRecord {
	return ItemRecord{Name: item.Name, Kind: item.Kind}
}

// RecordsOf projects an ordered item list, never returning nil so empty lists
// serialize as [] rather than null.
func RecordsOf(items []*Item) []ItemRecord {
	records := make([]ItemRecord, len(items))
	for i, item := range items {
		records[i] = RecordOf(item)
	}
	return records
}
