package engine

import "fmt"

// ZEventListener (VERSION 1). Version 0 stored the event name as a
// hashed i32 rather than a string.
type ZEventListener struct {
	EventName string
}

func (*ZEventListener) ComponentVersion() int32 { return 1 }

func (z *ZEventListener) Accept(v Visitor, version int32) error {
	return visitZEventName(v, version, &z.EventName)
}

// ZEventTrigger (VERSION 1). Gains oneShot at version 1, alongside the
// same legacy-hash/modern-string event name split as ZEventListener.
type ZEventTrigger struct {
	EventName string
	OneShot   bool
}

func (*ZEventTrigger) ComponentVersion() int32 { return 1 }

func (z *ZEventTrigger) Accept(v Visitor, version int32) error {
	if err := visitZEventName(v, version, &z.EventName); err != nil {
		return err
	}
	if version >= 1 {
		return v.VisitBool(&z.OneShot)
	}
	return nil
}

// visitZEventName implements the shared event-name encoding: a version 0
// wire carries an i32 hash, recovered here as a "Event <hash>"
// placeholder name since the original string can't be reconstructed;
// version 1+ carries the name itself.
func visitZEventName(v Visitor, version int32, name *string) error {
	if version >= 1 {
		return visitPlainString(v, name)
	}

	var hash int32
	if v.Direction() == DirectionOut {
		hash = legacyEventHash(*name)
	}
	if err := v.VisitI32(&hash); err != nil {
		return err
	}
	if v.Direction() == DirectionIn {
		*name = fmt.Sprintf("Event %d", hash)
	}
	return nil
}

// legacyEventHash is a documented stand-in for the legacy i32 event-name
// hash: it only needs to round-trip a "Event <n>" placeholder name back
// to the same integer, never to hash arbitrary names authoritatively.
func legacyEventHash(name string) int32 {
	var n int64
	fmt.Sscanf(name, "Event %d", &n)
	return int32(n)
}
