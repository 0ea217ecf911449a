/*
 * styles.go, part of gosld.
 *
 *
 * Copyright 2026 The goSLD authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary   = lipgloss.Color("39")
	colorSecondary = lipgloss.Color("86")
	colorWarning   = lipgloss.Color("220")
	colorError     = lipgloss.Color("196")
	colorDim       = lipgloss.Color("241")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(28)

	cellStyle = lipgloss.NewStyle().
			Width(13).
			Align(lipgloss.Right)

	firstCellStyle = lipgloss.NewStyle().
			Width(8)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)
)

//field renders one labelled value.
func field(label string, value string) string {
	return labelStyle.Render(label) + value
}

//row renders table cells, the first one left-aligned.
func row(cells ...string) string {
	if len(cells) == 0 {
		return ""
	}
	out := make([]string, 0, len(cells))
	out = append(out, firstCellStyle.Render(cells[0]))
	for _, c := range cells[1:] {
		out = append(out, cellStyle.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func num(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

func cplx(c complex128) string {
	return fmt.Sprintf("%.5e %+.5ei", real(c), imag(c))
}

//lines joins the rendered lines, ending with a newline.
func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}
