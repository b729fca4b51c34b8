package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/they4kman/gosweep9/game"
)

var (
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	revealedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	flagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("9"))

	hudStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	numberStyle = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		6: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		7: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		8: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

func FormatFlags(flagsRemaining int) string {
	return fmt.Sprintf("%02d", flagsRemaining)
}

func FormatTime(seconds int) string {
	return fmt.Sprintf("%03d", seconds)
}

func Face(status game.Status) string {
	switch status {
	case game.Won:
		return "😎"
	case game.Lost:
		return "😵"
	case game.Playing:
		return "😊"
	default:
		return "🙂"
	}
}

func StatusText(status game.Status) string {
	switch status {
	case game.Won:
		return "You Won!"
	case game.Lost:
		return "Game Over"
	case game.Playing:
		return "Playing"
	default:
		return "Ready"
	}
}

// Glyph is the unstyled single-character rendering of a cell
func Glyph(cell game.Cell) string {
	switch cell.State {
	case game.Flagged:
		return "F"
	case game.Revealed:
		switch {
		case cell.IsMine:
			return "*"
		case cell.AdjacentMines == 0:
			return " "
		default:
			return fmt.Sprint(cell.AdjacentMines)
		}
	default:
		return "■"
	}
}

func cellStyle(cell game.Cell) lipgloss.Style {
	switch cell.State {
	case game.Flagged:
		return flagStyle
	case game.Revealed:
		if cell.IsMine {
			return mineStyle
		}
		if style, ok := numberStyle[cell.AdjacentMines]; ok {
			return style
		}
		return revealedStyle
	default:
		return hiddenStyle
	}
}

func (model Model) hud() string {
	status := StatusText(model.state.Status)
	switch model.state.Status {
	case game.Won:
		status = wonStyle.Render(status)
	case game.Lost:
		status = lostStyle.Render(status)
	}

	return hudStyle.Render(fmt.Sprintf(
		"🚩 %s   %s   ⏱ %s   %s",
		FormatFlags(model.state.FlagsRemaining),
		Face(model.state.Status),
		FormatTime(model.state.ElapsedTime),
		status,
	))
}

func (model Model) grid() string {
	board := model.state.Board
	var b strings.Builder

	for row := 0; row < board.Size(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < board.Size(); col++ {
			pos := game.Position{Row: row, Col: col}
			cell := board.At(pos)

			style := cellStyle(cell)
			if pos == model.cursor {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(" " + Glyph(cell) + " "))
		}
	}

	return boardStyle.Render(b.String())
}

func (model Model) View() string {
	help := "arrows/hjkl move · space reveal · f flag · r reset · q quit"
	if model.director != nil {
		help = "autoplay · r reset · q quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		model.hud(),
		model.grid(),
		helpStyle.Render(help),
	) + "\n"
}
