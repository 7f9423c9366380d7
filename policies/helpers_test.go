package policies

import "github.com/marl-lab/gridwalk/types"

type sAction string

func (a sAction) Hash() string {
	return string(a)
}

type sState struct {
	name     string
	terminal bool
}

func (s sState) Hash() string {
	return s.name
}

func (s sState) Actions() []types.Action {
	if s.terminal {
		return nil
	}
	return []types.Action{sAction("left"), sAction("right")}
}
