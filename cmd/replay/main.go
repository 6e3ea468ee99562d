// Command replay steps through an archived arena game in the terminal.
// Left/right arrows move between turns, q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/copperbelly/battlesnake/archive"
	"github.com/copperbelly/battlesnake/sdk"
)

var (
	foodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
	bodyStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

type model struct {
	game   archive.Game
	frames []archive.Frame
	index  int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.index > 0 {
				m.index--
			}
		case "right", "l":
			if m.index < len(m.frames)-1 {
				m.index++
			}
		case "home", "g":
			m.index = 0
		case "end", "G":
			m.index = len(m.frames) - 1
		}
	}
	return m, nil
}

func (m model) View() string {
	frame := m.frames[m.index]
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("game %s  turn %d/%d", m.game.ID, frame.Turn, m.frames[len(m.frames)-1].Turn)))
	sb.WriteString("\n\n")
	sb.WriteString(renderBoard(frame.State))
	sb.WriteString("\n")
	for i, snake := range frame.State.Board.Snakes {
		style := headStyles[i%len(headStyles)]
		sb.WriteString(style.Render(snake.Name))
		sb.WriteString(fmt.Sprintf("  health=%d length=%d\n", snake.Health, snake.Length))
	}
	if m.game.Winner != "" {
		sb.WriteString(fmt.Sprintf("\nwinner: %s\n", m.game.Winner))
	}
	sb.WriteString(dimStyle.Render("\n←/→ step  g/G first/last  q quit\n"))
	return sb.String()
}

func renderBoard(state sdk.GameState) string {
	board := state.Board
	grid := make([][]string, board.Height)
	for y := range grid {
		grid[y] = make([]string, board.Width)
		for x := range grid[y] {
			grid[y][x] = dimStyle.Render(".")
		}
	}
	for _, food := range board.Food {
		if !board.OutOfBounds(food) {
			grid[food.Y][food.X] = foodStyle.Render("*")
		}
	}
	for i, snake := range board.Snakes {
		head := headStyles[i%len(headStyles)]
		body := bodyStyles[i%len(bodyStyles)]
		for j, c := range snake.Body {
			if board.OutOfBounds(c) {
				continue
			}
			if j == 0 {
				grid[c.Y][c.X] = head.Render("@")
			} else {
				grid[c.Y][c.X] = body.Render("o")
			}
		}
	}

	// y grows upward in Battlesnake coordinates, so render top-down.
	var sb strings.Builder
	for y := board.Height - 1; y >= 0; y-- {
		sb.WriteString(strings.Join(grid[y], " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func main() {
	var (
		dbPath = flag.String("db", "arena.db", "path to the game archive")
		gameID = flag.String("game", "", "game id to replay (default: most recent)")
	)
	flag.Parse()

	db, err := archive.Open(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer db.Close()

	games, err := db.Games()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(games) == 0 {
		fmt.Fprintln(os.Stderr, "archive holds no games")
		os.Exit(1)
	}

	game := games[0]
	if *gameID != "" {
		found := false
		for _, g := range games {
			if g.ID == *gameID {
				game, found = g, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "game %s not found in archive\n", *gameID)
			os.Exit(1)
		}
	}

	frames, err := db.Frames(game.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Fprintf(os.Stderr, "game %s has no frames\n", game.ID)
		os.Exit(1)
	}

	p := tea.NewProgram(model{game: game, frames: frames}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
