package engine

// AnimatedMotionType selects what an Animated component moves.
type AnimatedMotionType int32

const (
	AnimatedMotionSpinning AnimatedMotionType = iota
	AnimatedMotionSliding
	AnimatedMotionHinge
	AnimatedMotionPendulum
	AnimatedMotionBouncing
	AnimatedMotionAdvanced
)

// AnimatedTranslateType further refines a translating Animated: how the
// translation is expressed and driven.
type AnimatedTranslateType int32

const (
	AnimatedTranslateNone AnimatedTranslateType = iota
	AnimatedTranslateLocal
	AnimatedTranslateGlobal
	AnimatedTranslateFollowTrack
	AnimatedTranslateProjectile
	AnimatedTranslateAbsolute
)

// AnimatorBaseCurveType selects the easing curve driving an animation's
// timing.
type AnimatorBaseCurveType int32

const (
	AnimatorBaseCurveLinear AnimatorBaseCurveType = iota
	AnimatorBaseCurveEaseIn
	AnimatorBaseCurveEaseOut
	AnimatorBaseCurveEaseInOut
	AnimatorBaseCurveQuadratic
	AnimatorBaseCurveInverseQuadratic
	AnimatorBaseCurveSinWave
)

// opposite mirrors the curve used for the return half of a ping-pong
// animation against the curve used for the forward half.
func (c AnimatorBaseCurveType) opposite() AnimatorBaseCurveType {
	switch c {
	case AnimatorBaseCurveEaseIn:
		return AnimatorBaseCurveEaseOut
	case AnimatorBaseCurveEaseOut:
		return AnimatorBaseCurveEaseIn
	case AnimatorBaseCurveQuadratic:
		return AnimatorBaseCurveInverseQuadratic
	case AnimatorBaseCurveInverseQuadratic:
		return AnimatorBaseCurveQuadratic
	default:
		return c
	}
}

// AnimatorBaseTriggerAction is what a trigger event does to the
// animation's playback state.
type AnimatorBaseTriggerAction int32

const (
	AnimatorBaseTriggerActionNone AnimatorBaseTriggerAction = iota
	AnimatorBaseTriggerActionPlay
	AnimatorBaseTriggerActionPlayReverse
	AnimatorBaseTriggerActionStop
	AnimatorBaseTriggerActionPingPong
)

// AnimatorBaseExtrapolationTypeObsolete is the pre-version-8 way of
// expressing looping/ping-pong playback, superseded by the modern
// on/off trigger action pair plus an explicit extend flag.
type AnimatorBaseExtrapolationTypeObsolete int32

const (
	AnimatorBaseExtrapolationNormal AnimatorBaseExtrapolationTypeObsolete = iota
	AnimatorBaseExtrapolationPingPong
	AnimatorBaseExtrapolationExtend
)

// AnimatorBase is Animated's embedded timing/trigger sub-schema. It is
// never dispatched on its own; Animated.Accept drives it directly.
type AnimatorBase struct {
	Delay            float32
	Duration         float32
	TimeOffset       float32
	Loop             bool
	Extend           bool
	CurveType        AnimatorBaseCurveType
	EditorAnimationT float32

	CustomPongValues bool
	PongDelay        float32
	PongDuration     float32
	PongCurveType    AnimatorBaseCurveType

	DefaultAction AnimatorBaseTriggerAction

	OnAction                  AnimatorBaseTriggerAction
	OnWaitForAnimationFinish  bool
	OnReset                   bool
	OffAction                 AnimatorBaseTriggerAction
	OffWaitForAnimationFinish bool
	OffReset                  bool
}

// newAnimatorBase builds the engine-side default values a freshly
// created Animated carries before any wire data overrides them.
func newAnimatorBase() AnimatorBase {
	return AnimatorBase{
		Delay:            1,
		Duration:         1,
		CurveType:        AnimatorBaseCurveEaseInOut,
		CustomPongValues: false,
		PongDelay:        1,
		PongDuration:     1,
		PongCurveType:    AnimatorBaseCurveEaseInOut,
		DefaultAction:    AnimatorBaseTriggerActionPingPong,
	}
}

// visitCurve is the version>=8 timing layout: delay/duration/offset,
// looping and extend flags, the easing curve, and the pong override
// values used for a ping-pong animation's return half.
func (a *AnimatorBase) visitCurve(v Visitor) error {
	if err := v.VisitF32(&a.Delay); err != nil {
		return err
	}
	if err := v.VisitF32(&a.Duration); err != nil {
		return err
	}
	if err := v.VisitF32(&a.TimeOffset); err != nil {
		return err
	}
	if err := v.VisitBool(&a.Loop); err != nil {
		return err
	}
	if err := v.VisitBool(&a.Extend); err != nil {
		return err
	}
	if err := VisitEnum(v, &a.CurveType); err != nil {
		return err
	}
	if err := v.VisitF32(&a.EditorAnimationT); err != nil {
		return err
	}
	if err := v.VisitBool(&a.CustomPongValues); err != nil {
		return err
	}
	if err := v.VisitF32(&a.PongDelay); err != nil {
		return err
	}
	if err := v.VisitF32(&a.PongDuration); err != nil {
		return err
	}
	if err := VisitEnum(v, &a.PongCurveType); err != nil {
		return err
	}

	if v.Direction() == DirectionIn && !a.CustomPongValues {
		a.PongDelay = a.Delay
		a.PongDuration = a.Duration
		a.PongCurveType = a.CurveType.opposite()
	}

	return nil
}

// visitCurveOld is the pre-version-8 timing layout, driven by the
// obsolete extrapolation enum instead of separate loop/extend flags.
// It reports whether the animation should be upgraded to the modern
// ping-pong representation once the full Accept call completes.
func (a *AnimatorBase) visitCurveOld(v Visitor, oldAnimationT bool) (bool, error) {
	if err := v.VisitF32(&a.Delay); err != nil {
		return false, err
	}
	if err := v.VisitF32(&a.Duration); err != nil {
		return false, err
	}
	if err := v.VisitF32(&a.TimeOffset); err != nil {
		return false, err
	}
	if err := v.VisitBool(&a.Loop); err != nil {
		return false, err
	}

	extrapolationType := AnimatorBaseExtrapolationPingPong
	if err := VisitEnum(v, &extrapolationType); err != nil {
		return false, err
	}
	a.Extend = extrapolationType == AnimatorBaseExtrapolationExtend

	if err := VisitEnum(v, &a.CurveType); err != nil {
		return false, err
	}

	if oldAnimationT {
		var centeredAnimation bool
		if err := v.VisitBool(&centeredAnimation); err != nil {
			return false, err
		}
		if centeredAnimation {
			a.EditorAnimationT = 0.5
		} else {
			a.EditorAnimationT = 0
		}
	} else {
		if err := v.VisitF32(&a.EditorAnimationT); err != nil {
			return false, err
		}
	}

	if err := v.VisitBool(&a.CustomPongValues); err != nil {
		return false, err
	}
	if err := v.VisitF32(&a.PongDelay); err != nil {
		return false, err
	}
	if err := v.VisitF32(&a.PongDuration); err != nil {
		return false, err
	}
	if err := VisitEnum(v, &a.PongCurveType); err != nil {
		return false, err
	}

	a.PongCurveType = a.PongCurveType.opposite()
	if !a.CustomPongValues {
		a.PongDelay = a.Delay
		a.PongDuration = a.Duration
		a.PongCurveType = a.CurveType.opposite()
	}

	return extrapolationType == AnimatorBaseExtrapolationPingPong, nil
}

func (a *AnimatorBase) visitTrigger(v Visitor) error {
	if err := VisitEnum(v, &a.DefaultAction); err != nil {
		return err
	}

	if err := VisitEnum(v, &a.OnAction); err != nil {
		return err
	}
	if err := v.VisitBool(&a.OnWaitForAnimationFinish); err != nil {
		return err
	}
	if err := v.VisitBool(&a.OnReset); err != nil {
		return err
	}

	if err := VisitEnum(v, &a.OffAction); err != nil {
		return err
	}
	if err := v.VisitBool(&a.OffWaitForAnimationFinish); err != nil {
		return err
	}
	return v.VisitBool(&a.OffReset)
}

// upgradeToNewPingPong reconciles the legacy Play/PlayReverse action
// pair (driven by the obsolete extrapolation type) into the modern
// PingPong representation.
func (a *AnimatorBase) upgradeToNewPingPong(applyPingPong bool) {
	if !applyPingPong {
		return
	}

	flag := false
	if a.OnAction == AnimatorBaseTriggerActionPlay || a.OnAction == AnimatorBaseTriggerActionPlayReverse {
		a.OnAction = AnimatorBaseTriggerActionPingPong
		flag = true
	}
	if a.OffAction == AnimatorBaseTriggerActionPlay || a.OffAction == AnimatorBaseTriggerActionPlayReverse {
		a.OffAction = AnimatorBaseTriggerActionPingPong
		flag = true
	}
	if !flag || a.DefaultAction == AnimatorBaseTriggerActionPlay || a.DefaultAction == AnimatorBaseTriggerActionPlayReverse {
		a.DefaultAction = AnimatorBaseTriggerActionPingPong
	}
}

// Animated (VERSION 11). The motion layout is split by version: below
// version 4 it's a legacy rotate-center/translate-vector/move-along-
// track shape; version 4 and up use the modern center-point/enum-typed
// translate-type/follow-distance shape, itself gated field-by-field as
// later versions added rotateGlobal, doublePivotDistance,
// followPercentOfTrack, wrapAround, and the exactly-version-4
// projectile velocity quirk.
type Animated struct {
	Base AnimatorBase

	Motion AnimatedMotionType

	Scale         bool
	ScaleExponent Vector3

	Rotate          bool
	RotateAxis      Vector3
	CenterPoint     Vector3
	RotateMagnitude float32

	TranslateType        AnimatedTranslateType
	TranslateVector      Vector3
	FollowDistance       float32
	FollowPercentOfTrack bool
	RotateGlobal         bool
	DoublePivotDistance  float32
	WrapAround           bool

	ProjectileVelocity Vector3
	ProjectileGravity  Vector3

	AnimatePhysics bool
	AlwaysAnimate  bool
}

// NewAnimated builds an Animated carrying the engine-side defaults a
// freshly placed object has before any wire data overrides them.
func NewAnimated() Animated {
	return Animated{
		Base:                 newAnimatorBase(),
		Motion:               AnimatedMotionHinge,
		ScaleExponent:        Vector3{X: 0, Y: 1, Z: 0},
		Rotate:               true,
		RotateAxis:           Vector3{X: 0, Y: 1, Z: 0},
		RotateMagnitude:      90,
		TranslateVector:      Vector3{X: 0, Y: 10, Z: 0},
		FollowDistance:       100,
		FollowPercentOfTrack: true,
		WrapAround:           true,
		ProjectileVelocity:   Vector3{X: 0, Y: 50, Z: 25},
		ProjectileGravity:    Vector3{X: 0, Y: -25, Z: 0},
		AnimatePhysics:       true,
	}
}

func (*Animated) ComponentVersion() int32 { return 11 }

func (a *Animated) Accept(v Visitor, version int32) error {
	if err := VisitEnum(v, &a.Motion); err != nil {
		return err
	}

	if version >= 1 {
		if err := v.VisitBool(&a.Scale); err != nil {
			return err
		}
		if err := v.VisitVector3(&a.ScaleExponent); err != nil {
			return err
		}
	}

	if err := v.VisitBool(&a.Rotate); err != nil {
		return err
	}
	if err := v.VisitVector3(&a.RotateAxis); err != nil {
		return err
	}

	if version < 4 {
		if err := v.VisitVector3(&a.CenterPoint); err != nil {
			return err
		}
		if err := v.VisitF32(&a.RotateMagnitude); err != nil {
			return err
		}

		var translate bool
		if err := v.VisitBool(&translate); err != nil {
			return err
		}
		if translate {
			a.TranslateType = AnimatedTranslateLocal
		} else {
			a.TranslateType = AnimatedTranslateNone
		}

		if err := v.VisitVector3(&a.TranslateVector); err != nil {
			return err
		}

		if version >= 2 {
			var moveAlongTrack bool
			if err := v.VisitBool(&moveAlongTrack); err != nil {
				return err
			}
			if moveAlongTrack {
				a.TranslateType = AnimatedTranslateFollowTrack
			}
			if err := v.VisitF32(&a.FollowDistance); err != nil {
				return err
			}
		}
		a.FollowPercentOfTrack = false
	} else {
		if version >= 5 {
			if err := v.VisitBool(&a.RotateGlobal); err != nil {
				return err
			}
		}
		if err := v.VisitF32(&a.RotateMagnitude); err != nil {
			return err
		}
		if err := v.VisitVector3(&a.CenterPoint); err != nil {
			return err
		}
		if err := VisitEnum(v, &a.TranslateType); err != nil {
			return err
		}
		if err := v.VisitVector3(&a.TranslateVector); err != nil {
			return err
		}
		if err := v.VisitF32(&a.FollowDistance); err != nil {
			return err
		}

		if version >= 11 {
			if err := v.VisitF32(&a.DoublePivotDistance); err != nil {
				return err
			}
		}

		if version >= 9 {
			if err := v.VisitBool(&a.FollowPercentOfTrack); err != nil {
				return err
			}
		} else {
			a.FollowPercentOfTrack = false
		}

		if version >= 10 {
			if err := v.VisitBool(&a.WrapAround); err != nil {
				return err
			}
		}

		if version == 4 {
			if err := v.VisitVector3(&a.ProjectileVelocity); err != nil {
				return err
			}
		}
		if err := v.VisitVector3(&a.ProjectileGravity); err != nil {
			return err
		}
	}

	var applyPingPong bool
	if version >= 8 {
		if err := a.Base.visitCurve(v); err != nil {
			return err
		}
	} else {
		var err error
		applyPingPong, err = a.Base.visitCurveOld(v, version < 6)
		if err != nil {
			return err
		}
	}

	if version >= 7 {
		if err := v.VisitBool(&a.AnimatePhysics); err != nil {
			return err
		}
		if err := v.VisitBool(&a.AlwaysAnimate); err != nil {
			return err
		}
	}
	if version >= 3 {
		if err := a.Base.visitTrigger(v); err != nil {
			return err
		}
	}
	if version < 8 {
		a.Base.upgradeToNewPingPong(applyPingPong)
	}

	return nil
}
