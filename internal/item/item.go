package item

//go:generate mockgen -destination=mock/mock.go -package=itemmock gridinv/internal/item Item

// Item is the capability set every inventory entry must provide.
// Name doubles as the stacking key: stackable items sharing a name
// collapse into one slot.
type Item interface {
	ID() string

	Name() string
	SetName(name string)

	// Tooltip may contain <b> and <i> rich-text tags
	Tooltip() string
	SetTooltip(tooltip string)

	// Image is the icon resource name without extension
	Image() string
	SetImage(image string)

	Consumable() bool
	Stackable() bool

	// Callbacks invoked from the options menu. Each reports whether the
	// action applied.
	Use() bool
	Equip() bool
	Destroy() bool
}

// Owner is the slice of the inventory an item needs to remove itself.
type Owner interface {
	Remove(id string) bool
}
