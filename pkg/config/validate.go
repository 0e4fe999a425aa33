package config

import "github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"

// Validate enforces every invariant spec'd for a ConfigRoot. It never
// partially accepts: the first violation found is returned and no caller
// should act on a ConfigRoot that failed Validate.
func (c *ConfigRoot) Validate() error {
	for i := range c.Devices {
		if err := c.Devices[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d *DeviceConfig) validate() error {
	seenBase := make(map[keycode.KeyCode]bool)

	for _, m := range d.Mappings {
		if !m.IsConditional() {
			if err := validateBase(m.Base, seenBase); err != nil {
				return err
			}
			continue
		}
		if err := validateCondition(*m.Condition); err != nil {
			return err
		}
		// Each conditional block is its own scope: duplicate "from" keys
		// are only disallowed within the same block, not across two
		// blocks gated by different conditions.
		scope := make(map[keycode.KeyCode]bool)
		for _, base := range m.Mappings {
			if err := validateBase(base, scope); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCondition(cond Condition) error {
	switch cond.Kind {
	case CondModifierActive:
		if !ModifierID(cond.ID).Valid() {
			return newParseError("modifier id %d out of range", cond.ID)
		}
	case CondLockActive:
		if !LockID(cond.ID).Valid() {
			return newParseError("lock id %d out of range", cond.ID)
		}
	case CondAllActive, CondNotActive:
		for _, item := range cond.Items {
			switch item.Kind {
			case ItemModifierActive:
				if !ModifierID(item.ID).Valid() {
					return newParseError("modifier id %d out of range", item.ID)
				}
			case ItemLockActive:
				if !LockID(item.ID).Valid() {
					return newParseError("lock id %d out of range", item.ID)
				}
			default:
				return newParseError("condition item has unknown kind %d", item.Kind)
			}
		}
	case CondDeviceMatches:
		if cond.Pattern == "" {
			return newParseError("device_matches pattern must not be empty")
		}
	default:
		return newParseError("condition has unknown kind %d", cond.Kind)
	}
	return nil
}

func validateBase(m BaseKeyMapping, seenFrom map[keycode.KeyCode]bool) error {
	if !m.From.Valid() {
		return newParseError("mapping references invalid key code %d", m.From)
	}

	switch m.Kind {
	case MappingSimple:
		if !m.To.Valid() {
			return newParseError("simple mapping %s has invalid target", m.From)
		}
		if seenFrom[m.From] {
			return newParseError("duplicate simple mapping for %s in this scope", m.From)
		}
		seenFrom[m.From] = true

	case MappingModifier:
		if !m.ModifierID.Valid() {
			return newParseError("modifier mapping %s has invalid modifier id", m.From)
		}

	case MappingLock:
		if !m.LockID.Valid() {
			return newParseError("lock mapping %s has invalid lock id", m.From)
		}

	case MappingTapHold:
		if !m.Tap.Valid() {
			return newParseError("tap_hold %s has invalid tap key", m.From)
		}
		if m.From == m.Tap {
			return newParseError("tap_hold %s: from and tap must differ", m.From)
		}
		if m.HoldKind == HoldKey {
			if !m.HoldKey.Valid() {
				return newParseError("tap_hold %s has invalid hold key", m.From)
			}
		} else {
			if !m.HoldModID.Valid() {
				return newParseError("tap_hold %s has invalid hold modifier id", m.From)
			}
		}
		if m.ThresholdMs < 1 || m.ThresholdMs > 10000 {
			return newParseError("tap_hold %s: threshold_ms %d out of range [1,10000]", m.From, m.ThresholdMs)
		}

	case MappingModifiedOutput:
		if !m.To.Valid() {
			return newParseError("modified_output %s has invalid target", m.From)
		}
		for _, mod := range m.PhysicalMods {
			if !isPhysicalModifier(mod) {
				return newParseError("modified_output %s: %s is not a physical modifier", m.From, mod)
			}
		}

	default:
		return newParseError("mapping %s has unknown kind %d", m.From, m.Kind)
	}
	return nil
}

func isPhysicalModifier(kc keycode.KeyCode) bool {
	switch kc {
	case keycode.LShift, keycode.RShift, keycode.LCtrl, keycode.RCtrl,
		keycode.LAlt, keycode.RAlt, keycode.LMeta, keycode.RMeta:
		return true
	default:
		return false
	}
}
