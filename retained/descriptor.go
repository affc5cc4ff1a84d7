package retained

// DescFlags are type-level capabilities shared by every instance of a type.
type DescFlags uint8

const (
	// DescAllowChildren lets instances act as parents.
	DescAllowChildren DescFlags = 1 << iota

	// DescWindow marks window types. Windows can become the active window
	// and are activated when a touch lands inside them.
	DescWindow
)

// Descriptor is the immutable metadata of one widget type. A descriptor is
// declared once, typically as a package-level variable, and shared by all
// instances of the type.
type Descriptor struct {
	// Name identifies the type. It is also the key for theme tables.
	Name string

	// Size is the storage charged to the allocator for one instance.
	Size int

	Flags DescFlags

	// Callback interprets every control message sent to instances.
	Callback Callback

	// Colors is the default color table, indexed by the type's roles.
	Colors []Color

	// NewState builds the type-specific part of a new instance. May be nil.
	NewState func() any
}

// DefaultColor returns the descriptor's default for role, or ColorNone.
func (d *Descriptor) DefaultColor(role int) Color {
	if role < 0 || role >= len(d.Colors) {
		return ColorNone
	}
	return d.Colors[role]
}

// AllowsChildren reports whether instances may have children.
func (d *Descriptor) AllowsChildren() bool {
	return d.Flags&DescAllowChildren != 0
}
