package explorer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/marl-lab/gridwalk/policies"
	"github.com/spf13/cobra"
)

// Elem is a recorded state or action
type Elem struct {
	Key  string `json:"key"`
	Repr string `json:"repr"`
}

// RecordedTrace is the serialized form of an episode trace
type RecordedTrace struct {
	States     []*Elem   `json:"states"`
	Actions    []*Elem   `json:"actions"`
	NextStates []*Elem   `json:"next_states"`
	Rewards    []float64 `json:"rewards"`
}

func (t *RecordedTrace) Len() int {
	return len(t.States)
}

func (t *RecordedTrace) Get(i int) (*Elem, *Elem, *Elem, float64, bool) {
	if i >= len(t.States) {
		return nil, nil, nil, 0, false
	}
	return t.States[i], t.Actions[i], t.NextStates[i], t.Rewards[i], true
}

// Explorer inspects a recorded q table and the traces it produced
type Explorer struct {
	PolicyFile string
	TracesFile string

	QTable *policies.QTable
	Traces []*RecordedTrace

	StateMap map[string]*Elem
}

// Create an explorer of q tables and traces
func NewExplorer(policyFile string, tracesFile string) (*Explorer, error) {
	e := &Explorer{
		PolicyFile: policyFile,
		TracesFile: tracesFile,
		QTable:     policies.NewQTable(),
		Traces:     make([]*RecordedTrace, 0),
		StateMap:   make(map[string]*Elem),
	}

	err := e.QTable.Read(policyFile)
	if err != nil {
		return nil, err
	}
	e.Traces, err = readTraces(e.TracesFile)
	if err != nil {
		return nil, err
	}

	for _, t := range e.Traces {
		for _, s := range t.States {
			if _, ok := e.StateMap[s.Key]; !ok {
				e.StateMap[s.Key] = s
			}
		}
	}

	return e, nil
}

func readTraces(path string) ([]*RecordedTrace, error) {
	traces := make([]*RecordedTrace, 0)
	file, err := os.Open(path)
	if err != nil {
		return traces, fmt.Errorf("error reading file: %s", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	maxTraceSize := 5 * 1024 * 1024
	scanner.Buffer(make([]byte, maxTraceSize), maxTraceSize)
	for scanner.Scan() {
		t := &RecordedTrace{}
		bs := scanner.Bytes()
		if len(bs) >= maxTraceSize {
			return traces, errors.New("error trace too big")
		}
		if err := json.Unmarshal(bs, t); err != nil {
			return traces, fmt.Errorf("error reading file contents: %s", err)
		}
		if len(t.States) != len(t.Actions) || len(t.Actions) != len(t.NextStates) || len(t.States) != len(t.Rewards) {
			return traces, fmt.Errorf("number of states, actions and rewards mismatched")
		}
		traces = append(traces, t)
	}
	if scanner.Err() != nil {
		return traces, fmt.Errorf("failed to read traces: %s", scanner.Err())
	}
	return traces, nil
}

// Example invocation - ./gridwalk explore results/policies/QLearning_0.json results/traces/QLearning_0.jsonl
func ExploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:  "explore [policy_file] [traces_file]",
		Long: "Explore the choices of a q-table and the traces it produced",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := NewExplorer(args[0], args[1])
			if err != nil {
				return err
			}

			exp.Interact()
			return nil
		},
	}
}
