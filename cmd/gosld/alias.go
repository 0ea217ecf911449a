/*
 * alias.go, part of gosld.
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

	"github.com/spf13/cobra"
)

// newAliasCmd wires the `alias` command group.
func newAliasCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage formula aliases",
	}
	cmd.AddCommand(newAliasListCmd(o), newAliasDefineCmd(o), newAliasRemoveCmd(o))
	return cmd
}

func newAliasListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the aliases in definition order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, done, err := o.engine()
			if err != nil {
				return err
			}
			defer done()
			entries := e.ListAliases()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No aliases defined.")
				return nil
			}
			for _, a := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", headerStyle.Render(a.Name), a.Formula)
			}
			return nil
		},
	}
}

func newAliasDefineCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "define NAME FORMULA",
		Short: "Define or redefine an alias",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, done, err := o.engine()
			if err != nil {
				return err
			}
			defer done()
			if err := e.DefineAlias(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", headerStyle.Render(args[0]), args[1])
			return nil
		},
	}
}

func newAliasRemoveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, done, err := o.engine()
			if err != nil {
				return err
			}
			defer done()
			return e.RemoveAlias(args[0])
		},
	}
}
