package input

import "github.com/gdamore/tcell/v2"

// Kind discriminates the commands the engine understands
type Kind uint8

const (
	None Kind = iota
	Quit
	Pause
	Reset
	SpawnBass
	SpawnMid
	SpawnTreble
	SpawnBurst
	ToggleAudio
	ToggleOverlay
	ToggleWaveform
	ToggleHUD
	GravityUp
	GravityDown
	Resize
)

// Command is one translated input event. X and Y carry screen coordinates
// for SpawnBurst; other kinds ignore them
type Command struct {
	Kind Kind
	X, Y int
}

// Translate maps a raw tcell event to an engine command. Unbound events
// translate to None
func Translate(ev tcell.Event) Command {
	switch e := ev.(type) {
	case *tcell.EventResize:
		return Command{Kind: Resize}

	case *tcell.EventMouse:
		if e.Buttons()&tcell.Button1 != 0 {
			x, y := e.Position()
			return Command{Kind: SpawnBurst, X: x, Y: y}
		}

	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Command{Kind: Quit}
		case tcell.KeyRune:
			switch e.Rune() {
			case 'q':
				return Command{Kind: Quit}
			case ' ':
				return Command{Kind: Pause}
			case 'r':
				return Command{Kind: Reset}
			case 'b':
				return Command{Kind: SpawnBass}
			case 'm':
				return Command{Kind: SpawnMid}
			case 't':
				return Command{Kind: SpawnTreble}
			case 'a':
				return Command{Kind: ToggleAudio}
			case 'o':
				return Command{Kind: ToggleOverlay}
			case 'w':
				return Command{Kind: ToggleWaveform}
			case 'h':
				return Command{Kind: ToggleHUD}
			case '+', '=':
				return Command{Kind: GravityUp}
			case '-', '_':
				return Command{Kind: GravityDown}
			}
		}
	}
	return Command{Kind: None}
}
