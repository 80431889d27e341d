package engine

// CarColors carries the four paintable color slots. It is embedded
// inside CarData rather than independently dispatched.
type CarColors struct {
	Primary   Color
	Secondary Color
	Glow      Color
	Sparkle   Color
}

func (c *CarColors) accept(v Visitor) error {
	if err := v.VisitColor(&c.Primary); err != nil {
		return err
	}
	if err := v.VisitColor(&c.Secondary); err != nil {
		return err
	}
	if err := v.VisitColor(&c.Glow); err != nil {
		return err
	}
	return v.VisitColor(&c.Sparkle)
}

// CarData carries the car selection shown during a replay: its display
// name and paint job. It is embedded in CarReplayData rather than
// dispatched on its own ComponentID, and always reads/writes at a
// hardcoded sub-version of 0.
type CarData struct {
	Version int32
	Name    *string
	Colors  CarColors
}

func (c *CarData) accept(v Visitor) error {
	var version int32
	if err := v.VisitI32(&version); err != nil {
		return err
	}
	if v.Direction() == DirectionIn {
		c.Version = version
	}

	if err := v.VisitString(&c.Name); err != nil {
		return err
	}
	return c.Colors.accept(v)
}

// CarReplayData (VERSION 7) is the largest version-gated component.
// Versions 1-4 wrote a dummy "eye state" byte buffer that's read and
// discarded without being stored; version 5 and up replaced the flat
// state buffer used below version 5 with separate transform and
// directive buffers.
type CarReplayData struct {
	Name           *string
	SteamID        int64
	SteamName      *string
	FinishValue    int32
	ReplayLengthMS int32

	Car CarData

	PlayerEventVersions []int32
	EventBuffer         []byte

	TransformBuffer []byte
	DirectiveBuffer []byte
	StateBuffer     []byte

	DataWasTruncated bool
}

func (*CarReplayData) ComponentVersion() int32 { return 7 }

func (c *CarReplayData) Accept(v Visitor, version int32) error {
	if err := v.VisitString(&c.Name); err != nil {
		return err
	}

	if version >= 2 {
		if err := v.VisitI64(&c.SteamID); err != nil {
			return err
		}
		if err := v.VisitString(&c.SteamName); err != nil {
			return err
		}

		if version >= 3 {
			if err := v.VisitI32(&c.FinishValue); err != nil {
				return err
			}
			if err := v.VisitI32(&c.ReplayLengthMS); err != nil {
				return err
			}
		}
	}

	if err := c.Car.accept(v); err != nil {
		return err
	}

	if err := VisitArray(v, &c.PlayerEventVersions, func(v Visitor, item *int32) error {
		return v.VisitI32(item)
	}); err != nil {
		return err
	}
	if err := VisitArray(v, &c.EventBuffer, func(v Visitor, item *byte) error {
		return v.VisitU8(item)
	}); err != nil {
		return err
	}

	if version >= 5 {
		if err := VisitArray(v, &c.TransformBuffer, func(v Visitor, item *byte) error {
			return v.VisitU8(item)
		}); err != nil {
			return err
		}
		if err := VisitArray(v, &c.DirectiveBuffer, func(v Visitor, item *byte) error {
			return v.VisitU8(item)
		}); err != nil {
			return err
		}
	} else {
		if err := VisitArray(v, &c.StateBuffer, func(v Visitor, item *byte) error {
			return v.VisitU8(item)
		}); err != nil {
			return err
		}
	}

	if version >= 1 && version <= 4 {
		var discarded []byte
		if err := VisitArray(v, &discarded, func(v Visitor, item *byte) error {
			return v.VisitU8(item)
		}); err != nil {
			return err
		}
	}

	if version >= 7 {
		if err := v.VisitBool(&c.DataWasTruncated); err != nil {
			return err
		}
	}

	return nil
}
