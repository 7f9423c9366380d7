package types

import "strconv"

// lineEnv is a small corridor used by the tests.
// Cells are numbered 0..size-1 and both ends are terminal.
type lineEnv struct {
	size  int
	start int
	pos   int
}

func newLineEnv(size, start int) *lineEnv {
	return &lineEnv{size: size, start: start}
}

func (e *lineEnv) Reset() State {
	e.pos = e.start
	return &lineState{env: e, pos: e.pos}
}

func (e *lineEnv) Step(a Action) State {
	switch a.Hash() {
	case "left":
		e.pos -= 1
	case "right":
		e.pos += 1
	}
	return &lineState{env: e, pos: e.pos}
}

type lineState struct {
	env *lineEnv
	pos int
}

func (s *lineState) Hash() string {
	return strconv.Itoa(s.pos)
}

func (s *lineState) Actions() []Action {
	if s.pos <= 0 || s.pos >= s.env.size-1 {
		return nil
	}
	return []Action{lineAction("left"), lineAction("right")}
}

type lineAction string

func (a lineAction) Hash() string {
	return string(a)
}

// scriptedPolicy always walks in one direction and counts the calls it gets
type scriptedPolicy struct {
	direction  string
	updates    int
	iterations int
}

var _ Policy = &scriptedPolicy{}

func (p *scriptedPolicy) NextAction(_ int, _ State, actions []Action) (Action, bool) {
	for _, a := range actions {
		if a.Hash() == p.direction {
			return a, true
		}
	}
	return nil, false
}

func (p *scriptedPolicy) Update(_ int, _ State, _ Action, _ State, _ float64) {
	p.updates += 1
}

func (p *scriptedPolicy) UpdateIteration(_ int, _ *Trace) {
	p.iterations += 1
}

func (p *scriptedPolicy) Reset() {
	p.updates = 0
	p.iterations = 0
}

func rightEndReward(size int, prize float64) RewardFunc {
	return func(_ State, _ Action, ns State) float64 {
		if ns.Hash() == strconv.Itoa(size-1) {
			return prize
		}
		return 0
	}
}

// walkRight runs one episode of walking right from start and returns the trace
func walkRight(size, start, horizon int) *Trace {
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     horizon,
		Policy:      &scriptedPolicy{direction: "right"},
		Environment: newLineEnv(size, start),
		Reward:      rightEndReward(size, 10),
	})
	return agent.RunEpisode(0)
}
