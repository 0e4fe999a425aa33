package dslc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RyosukeMondo/keyrx-sub002/pkg/config"
	"github.com/RyosukeMondo/keyrx-sub002/pkg/keycode"
)

// parseKey resolves a VK_ literal to a keycode.KeyCode. Used by the
// compiler for every key argument.
func parseKey(literal string) (keycode.KeyCode, error) {
	kc, ok := keycode.Parse(literal)
	if !ok {
		return 0, fmt.Errorf("unknown key literal %q (expected VK_ prefix)", literal)
	}
	return kc, nil
}

// parseModifierID resolves an "MD_XX" literal (two hex digits, 00-FE) to a
// config.ModifierID.
func parseModifierID(literal string) (config.ModifierID, error) {
	id, err := parseHexID(literal, "MD_")
	if err != nil {
		return 0, err
	}
	mid := config.ModifierID(id)
	if !mid.Valid() {
		return 0, fmt.Errorf("modifier id %q out of range (max MD_%02X)", literal, config.MaxModifierID)
	}
	return mid, nil
}

// parseLockID resolves an "LK_XX" literal to a config.LockID.
func parseLockID(literal string) (config.LockID, error) {
	id, err := parseHexID(literal, "LK_")
	if err != nil {
		return 0, err
	}
	lid := config.LockID(id)
	if !lid.Valid() {
		return 0, fmt.Errorf("lock id %q out of range (max LK_%02X)", literal, config.MaxLockID)
	}
	return lid, nil
}

func parseHexID(literal, prefix string) (uint8, error) {
	if !strings.HasPrefix(literal, prefix) {
		return 0, fmt.Errorf("expected %s prefix, got %q", prefix, literal)
	}
	hex := strings.TrimPrefix(literal, prefix)
	n, err := strconv.ParseUint(hex, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", literal, err)
	}
	return uint8(n), nil
}

// parseConditionItem resolves a single "MD_XX" or "LK_XX" literal to a
// ConditionItem (used inside AllActive/NotActive lists, and as the sole
// item of when_not_start).
func parseConditionItem(literal string) (config.ConditionItem, error) {
	if strings.HasPrefix(literal, "MD_") {
		id, err := parseModifierID(literal)
		if err != nil {
			return config.ConditionItem{}, err
		}
		return config.ConditionItem{Kind: config.ItemModifierActive, ID: uint8(id)}, nil
	}
	if strings.HasPrefix(literal, "LK_") {
		id, err := parseLockID(literal)
		if err != nil {
			return config.ConditionItem{}, err
		}
		return config.ConditionItem{Kind: config.ItemLockActive, ID: uint8(id)}, nil
	}
	return config.ConditionItem{}, fmt.Errorf("condition %q must have MD_ or LK_ prefix", literal)
}
