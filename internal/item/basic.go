package item

import "log/slog"

// Basic is the stock Item implementation. Use and Destroy remove the
// item from its owner; Equip only reports success.
type Basic struct {
	id         string
	name       string
	tooltip    string
	image      string
	consumable bool
	stackable  bool

	owner  Owner
	logger *slog.Logger
}

// NewBasic creates an item bound to owner. owner may be nil for items
// that are not held by an inventory yet; Use and Destroy then fail.
func NewBasic(id string, def Definition, owner Owner) *Basic {
	return &Basic{
		id:         id,
		name:       def.Name,
		tooltip:    def.Tooltip,
		image:      def.Image,
		consumable: def.Consumable,
		stackable:  def.Stackable,
		owner:      owner,
		logger:     slog.Default(),
	}
}

// WithLogger replaces the logger used by the callbacks.
func (b *Basic) WithLogger(logger *slog.Logger) *Basic {
	if logger != nil {
		b.logger = logger
	}
	return b
}

func (b *Basic) ID() string { return b.id }

func (b *Basic) Name() string        { return b.name }
func (b *Basic) SetName(name string) { b.name = name }

func (b *Basic) Tooltip() string           { return b.tooltip }
func (b *Basic) SetTooltip(tooltip string) { b.tooltip = tooltip }

func (b *Basic) Image() string         { return b.image }
func (b *Basic) SetImage(image string) { b.image = image }

func (b *Basic) Consumable() bool { return b.consumable }
func (b *Basic) Stackable() bool  { return b.stackable }

// Use consumes one unit of the item.
func (b *Basic) Use() bool {
	ok := b.removeFromOwner()
	b.logger.Info("used item", "id", b.id, "name", b.name, "ok", ok)
	return ok
}

// Equip reports success; equipment slots live outside the inventory.
func (b *Basic) Equip() bool {
	b.logger.Info("equipped item", "id", b.id, "name", b.name)
	return true
}

// Destroy drops one unit of the item.
func (b *Basic) Destroy() bool {
	ok := b.removeFromOwner()
	b.logger.Info("destroyed item", "id", b.id, "name", b.name, "ok", ok)
	return ok
}

func (b *Basic) removeFromOwner() bool {
	if b.owner == nil {
		return false
	}
	return b.owner.Remove(b.id)
}
