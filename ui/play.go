package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// PlayConfig configures the terminal loop of a session
type PlayConfig struct {
	// Keys maps short commands to action hashes,
	// e.g. "a" -> "P:Left"
	Keys map[string]string
	// Delay between agent moves during autorun
	Delay time.Duration
	In    io.Reader
	Out   io.Writer
}

func (c *PlayConfig) prompt() string {
	keys := make([]string, 0, len(c.Keys))
	for k := range c.Keys {
		keys = append(keys, k)
	}
	return fmt.Sprintf("Move(%s) Robot(enter) Autorun(r) Mode(m) Quit(q): ", strings.Join(keys, ","))
}

// Play runs the interactive loop until the game is over, the input
// ends or the player quits. An empty line hands the turn to the agent
// (which only moves in Autonomous mode), "r" lets the agent run until
// the game is over, "m" toggles the mode and "q" quits. Everything
// else is looked up in Keys and then tried as a raw action hash.
func Play(session *Session, cfg *PlayConfig) error {
	reader := bufio.NewReader(cfg.In)
	out := cfg.Out

	display := func() {
		fmt.Fprintf(out, "\n%s", session.Render())
		fmt.Fprintf(out, "Score: %.1f  Mode: %s  Steps: %d\n", session.Score(), session.Mode(), session.Steps())
	}

	display()
	for !session.Terminal() {
		fmt.Fprintf(out, "%s", cfg.prompt())
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		cmd := strings.TrimSpace(line)
		switch cmd {
		case "q":
			return nil
		case "m":
			fmt.Fprintf(out, "Mode: %s\n", session.ToggleMode())
		case "":
			if _, err := session.AgentAct(); err != nil {
				fmt.Fprintf(out, "%s\n", err)
			}
		case "r":
			for !session.Terminal() {
				moved, err := session.AgentAct()
				if err != nil || !moved {
					break
				}
				display()
				time.Sleep(cfg.Delay)
			}
		default:
			actionHash, ok := cfg.Keys[cmd]
			if !ok {
				actionHash = cmd
			}
			if err := session.HumanAct(actionHash); err != nil {
				fmt.Fprintf(out, "%s\n", err)
			}
		}
		display()
	}
	fmt.Fprintf(out, "Game over! Final score: %.1f in %d steps\n", session.Score(), session.Steps())
	return nil
}
