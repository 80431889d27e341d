package engine

// Texture-index remap constants: the shared texture atlas has grown
// across versions, so an imageIndex recorded under an older atlas size
// needs shifting up to the current atlas's index space on read.
const (
	goldenSimplesTextureCount        = 72
	goldenSimplesTextureCountVersion1 = 35
	goldenSimplesTextureCountVersion2 = 46
	goldenSimplesTextureCountVersion3 = 55
)

// GoldenSimplesPreset selects a named material/shape preset; Custom
// means the fields below are used as authored rather than derived from
// a preset.
type GoldenSimplesPreset int32

const GoldenSimplesPresetCustom GoldenSimplesPreset = 0

// GoldenSimples (VERSION 4).
type GoldenSimples struct {
	ImageIndex                 int32
	EmitIndex                  int32
	Preset                     GoldenSimplesPreset
	TextureScale               Vector3
	TextureOffset              Vector3
	FlipTextureUV              bool
	WorldMapped                bool
	DisableDiffuse             bool
	DisableBump                bool
	BumpStrength               float32
	DisableReflect             bool
	DisableCollision           bool
	AdditiveTransparency       bool
	MultiplicativeTransparency bool
	InvertEmit                 bool
}

func (*GoldenSimples) ComponentVersion() int32 { return 4 }

func (g *GoldenSimples) Accept(v Visitor, version int32) error {
	if err := v.VisitI32(&g.ImageIndex); err != nil {
		return err
	}

	if version >= 1 {
		if err := v.VisitI32(&g.EmitIndex); err != nil {
			return err
		}
	} else if v.Direction() == DirectionIn {
		g.EmitIndex = g.ImageIndex
	}

	if version >= 1 {
		if err := VisitEnum(v, &g.Preset); err != nil {
			return err
		}
	} else if v.Direction() == DirectionIn {
		g.Preset = GoldenSimplesPresetCustom
	}

	if err := v.VisitVector3(&g.TextureScale); err != nil {
		return err
	}
	if err := v.VisitVector3(&g.TextureOffset); err != nil {
		return err
	}
	if err := v.VisitBool(&g.FlipTextureUV); err != nil {
		return err
	}
	if err := v.VisitBool(&g.WorldMapped); err != nil {
		return err
	}
	if err := v.VisitBool(&g.DisableDiffuse); err != nil {
		return err
	}
	if err := v.VisitBool(&g.DisableBump); err != nil {
		return err
	}
	if version >= 3 {
		if err := v.VisitF32(&g.BumpStrength); err != nil {
			return err
		}
	}
	if err := v.VisitBool(&g.DisableReflect); err != nil {
		return err
	}
	if version >= 1 {
		if err := v.VisitBool(&g.DisableCollision); err != nil {
			return err
		}
		if err := v.VisitBool(&g.AdditiveTransparency); err != nil {
			return err
		}
	}
	if version >= 2 {
		if err := v.VisitBool(&g.MultiplicativeTransparency); err != nil {
			return err
		}
		if err := v.VisitBool(&g.InvertEmit); err != nil {
			return err
		}
	}

	if v.Direction() == DirectionIn {
		g.remapImageIndex(version)
	}
	return nil
}

func (g *GoldenSimples) remapImageIndex(version int32) {
	var threshold int32
	switch version {
	case 1:
		threshold = goldenSimplesTextureCountVersion1
	case 2:
		threshold = goldenSimplesTextureCountVersion2
	case 3:
		threshold = goldenSimplesTextureCountVersion3
	default:
		return
	}
	if g.ImageIndex >= threshold {
		g.ImageIndex += goldenSimplesTextureCount - threshold
	}
}
