// Copyright 2025 Arion Yau
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bravactl/internal/bravia"
)

// keyBindings maps terminal keys to IRCC codes
var keyBindings = map[string]bravia.KeyCode{
	"up":        bravia.KeyUp,
	"down":      bravia.KeyDown,
	"left":      bravia.KeyLeft,
	"right":     bravia.KeyRight,
	"enter":     bravia.KeyConfirm,
	"p":         bravia.KeyPower,
	"+":         bravia.KeyVolumeUp,
	"=":         bravia.KeyVolumeUp,
	"-":         bravia.KeyVolumeDown,
	"m":         bravia.KeyMute,
	"ctrl+up":   bravia.KeyChannelUp,
	"ctrl+down": bravia.KeyChannelDown,
	"h":         bravia.KeyHome,
	"ctrl+m":    bravia.KeyMenu,
	"backspace": bravia.KeyBack,
	"i":         bravia.KeyInput,
	"f1":        bravia.KeyHDMI1,
	"f2":        bravia.KeyHDMI2,
	"f3":        bravia.KeyHDMI3,
	"f4":        bravia.KeyHDMI4,
	"0":         bravia.KeyNum0,
	"1":         bravia.KeyNum1,
	"2":         bravia.KeyNum2,
	"3":         bravia.KeyNum3,
	"4":         bravia.KeyNum4,
	"5":         bravia.KeyNum5,
	"6":         bravia.KeyNum6,
	"7":         bravia.KeyNum7,
	"8":         bravia.KeyNum8,
	"9":         bravia.KeyNum9,
}

// keyLabels gives the status line a readable name for each bound key
var keyLabels = map[bravia.KeyCode]string{
	bravia.KeyUp:          "up",
	bravia.KeyDown:        "down",
	bravia.KeyLeft:        "left",
	bravia.KeyRight:       "right",
	bravia.KeyConfirm:     "confirm",
	bravia.KeyPower:       "power",
	bravia.KeyVolumeUp:    "volume up",
	bravia.KeyVolumeDown:  "volume down",
	bravia.KeyMute:        "mute",
	bravia.KeyChannelUp:   "channel up",
	bravia.KeyChannelDown: "channel down",
	bravia.KeyHome:        "home",
	bravia.KeyMenu:        "menu",
	bravia.KeyBack:        "back",
	bravia.KeyInput:       "input",
	bravia.KeyHDMI1:       "hdmi1",
	bravia.KeyHDMI2:       "hdmi2",
	bravia.KeyHDMI3:       "hdmi3",
	bravia.KeyHDMI4:       "hdmi4",
}

// Model is the single-screen remote control
type Model struct {
	client *bravia.Client
	host   string

	lastKey   bravia.KeyCode
	lastPress time.Time

	status    string
	statusErr bool

	width    int
	height   int
	quitting bool
}

// New creates the remote control model for an already configured client
func New(client *bravia.Client, host string) Model {
	return Model{
		client: client,
		host:   host,
	}
}

// Run starts the full-screen remote and blocks until the user quits
func Run(client *bravia.Client, host string) error {
	p := tea.NewProgram(New(client, host), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

		if code, ok := keyBindings[msg.String()]; ok {
			return m.press(code), nil
		}
	}

	return m, nil
}

// press sends the key and records the outcome for the status line
func (m Model) press(code bravia.KeyCode) Model {
	label := keyLabels[code]
	if label == "" {
		label = "key"
	}

	err := m.client.SendKey(code)
	if err != nil {
		m.status = fmt.Sprintf("%s failed: %v", label, err)
		m.statusErr = true
	} else {
		m.status = fmt.Sprintf("%s sent", label)
		m.statusErr = false
	}

	m.lastKey = code
	m.lastPress = time.Now()
	return m
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("Bravia Remote Control"),
		successStyle.Render("📺 " + m.host),
		m.renderButtons(),
	}

	if m.status != "" {
		if m.statusErr {
			sections = append(sections, errorStyle.Render("✗ "+m.status))
		} else {
			sections = append(sections, successStyle.Render("✓ "+m.status))
		}
	}

	help := "Arrows: Navigate • Enter: OK • P: Power • +/-: Volume • M: Mute • 0-9: Digits"
	if m.width > 100 {
		help += " • H: Home • I: Input • F1-F4: HDMI"
	}
	help += " • q: Quit"
	sections = append(sections, helpStyle.Render(help))

	return strings.Join(sections, "\n\n")
}

// renderButtons lays out the remote as three columns, highlighting the key
// pressed within the last 200ms.
func (m Model) renderButtons() string {
	style := func(code bravia.KeyCode) lipgloss.Style {
		if m.lastKey == code && time.Since(m.lastPress) < 200*time.Millisecond {
			return buttonActiveStyle
		}
		return buttonStyle
	}

	navColumn := lipgloss.JoinVertical(lipgloss.Center,
		sectionStyle.Render("Navigation:"),
		style(bravia.KeyPower).Render(" PWR  "),
		style(bravia.KeyUp).Render("  ↑   "),
		lipgloss.JoinHorizontal(lipgloss.Center,
			style(bravia.KeyLeft).Render("  ←   "),
			style(bravia.KeyConfirm).Render(" OK   "),
			style(bravia.KeyRight).Render("  →   ")),
		style(bravia.KeyDown).Render("  ↓   "),
	)

	volumeColumn := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Volume & Channel:"),
		lipgloss.JoinHorizontal(lipgloss.Left,
			style(bravia.KeyVolumeUp).Render("VOL + "),
			"  ",
			style(bravia.KeyChannelUp).Render("CH +  ")),
		lipgloss.JoinHorizontal(lipgloss.Left,
			style(bravia.KeyVolumeDown).Render("VOL - "),
			"  ",
			style(bravia.KeyChannelDown).Render("CH -  ")),
		style(bravia.KeyMute).Render("MUTE  "),
	)

	functionColumn := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Functions:"),
		lipgloss.JoinHorizontal(lipgloss.Left,
			style(bravia.KeyHome).Render("HOME  "),
			" ",
			style(bravia.KeyBack).Render("BACK  ")),
		lipgloss.JoinHorizontal(lipgloss.Left,
			style(bravia.KeyInput).Render("INPUT "),
			" ",
			style(bravia.KeyMenu).Render("MENU  ")),
		lipgloss.JoinHorizontal(lipgloss.Left,
			style(bravia.KeyHDMI1).Render("HDMI1 "),
			" ",
			style(bravia.KeyHDMI2).Render("HDMI2 ")),
		lipgloss.JoinHorizontal(lipgloss.Left,
			style(bravia.KeyHDMI3).Render("HDMI3 "),
			" ",
			style(bravia.KeyHDMI4).Render("HDMI4 ")),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		navColumn,
		strings.Repeat(" ", 6),
		volumeColumn,
		strings.Repeat(" ", 6),
		functionColumn,
	)
}
