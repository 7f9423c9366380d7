package policies

import (
	"encoding/json"
	"math"
	"os"
	"path"
)

// QTable maps state hashes to action hashes to values
type QTable struct {
	table map[string]map[string]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
	}
}

// Get the value, installing def when the entry is missing
func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	if _, ok := q.table[state][action]; !ok {
		q.table[state][action] = def
	}
	return q.table[state][action]
}

func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

// GetAll returns the values of every action recorded for the state
func (q *QTable) GetAll(state string) (map[string]float64, bool) {
	vals, ok := q.table[state]
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(vals))
	for k, v := range vals {
		out[k] = v
	}
	return out, true
}

// Max returns the best action of the state and its value,
// or def when the state has no values
func (q *QTable) Max(state string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
		return "", def
	}
	maxAction := ""
	maxVal := float64(math.MinInt)
	for a, val := range q.table[state] {
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	if maxAction == "" {
		return "", def
	}
	return maxAction, maxVal
}

// MaxAmong returns the best of the given actions, installing def
// for actions not seen before
func (q *QTable) MaxAmong(state string, actions []string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	maxAction := ""
	maxVal := float64(math.MinInt)
	for _, a := range actions {
		if _, ok := q.table[state][a]; !ok {
			q.table[state][a] = def
		}
		val := q.table[state][a]
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}

func (q *QTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.table)
}

func (q *QTable) UnmarshalJSON(data []byte) error {
	table := make(map[string]map[string]float64)
	if err := json.Unmarshal(data, &table); err != nil {
		return err
	}
	q.table = table
	return nil
}

// Record writes the table to a json file
func (q *QTable) Record(savePath string) error {
	bs, err := json.Marshal(q)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(path.Dir(savePath), 0777); err != nil {
		return err
	}
	return os.WriteFile(savePath, bs, 0644)
}

// Read loads the table from a json file
func (q *QTable) Read(savePath string) error {
	bs, err := os.ReadFile(savePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(bs, q)
}
