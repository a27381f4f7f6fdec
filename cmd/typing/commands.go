/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/voedger/typing/pkg/outcome"
	"github.com/voedger/typing/pkg/typing"
	"github.com/voedger/typing/pkg/typing/sys"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "list standard types and tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSys(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for t := range s.Root.Types() {
				fmt.Fprintf(out, "%v\t%v\tnone: %v\n", t, t.Class(), t.None())
			}
			for _, tag := range s.Tags() {
				fmt.Fprintf(out, "[%v]\n", tag)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <type>",
		Short: "print symbol table of type, like «int» or «int[positive]»",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSys(cmd)
			if err != nil {
				return err
			}
			t, err := s.Type(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), t.SymbolTable().Print())
			return nil
		},
	}
}

func newEvalCmd() *cobra.Command {
	var (
		typeName string
		curry    int
	)
	cmd := &cobra.Command{
		Use:   "eval <operation> [args...]",
		Short: "evaluate operation with arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSys(cmd)
			if err != nil {
				return err
			}
			types := s.Types()
			if typeName != "" {
				t, err := s.Type(typeName)
				if err != nil {
					return err
				}
				types = []typing.IType{t}
			}
			op, in, err := sys.ResolveIn(types, args[0], args[1:]...)
			if err != nil {
				return err
			}
			res, err := evaluate(op, in, curry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v => %v\n", op, res)
			return res.Err()
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "look up operation in type, like «int[positive]»")
	cmd.Flags().IntVar(&curry, "curry", 0, "bind first inputs and evaluate curried operation with the rest")
	return cmd
}

// Evaluates operation. If k > 0, evaluates operation curried with first k inputs.
func evaluate(op typing.IOperation, in []outcome.IOutcome, k int) (outcome.IOutcome, error) {
	if k == 0 {
		return op.Evaluate(in...), nil
	}
	bound := len(in)
	if !op.Variadic() {
		bound--
	}
	if k < 0 || k > bound {
		return nil, typing.ErrOutOfBounds("curry %d inputs of «%v» with %d arguments", k, op, len(in))
	}
	return op.Curry(in[:k]...).Evaluate(in[k:]...), nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <type> <value>",
		Short: "check value by type constraints",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSys(cmd)
			if err != nil {
				return err
			}
			t, err := s.Type(args[0])
			if err != nil {
				return err
			}
			v := sys.Parse(t, args[1])
			if err := t.CheckValue(v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v is %v\n", v, t)
			return nil
		},
	}
}

func newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub <type> <tag>...",
		Short: "derive sub-type by applying tags in order",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSys(cmd)
			if err != nil {
				return err
			}
			t, err := s.Type(args[0])
			if err != nil {
				return err
			}
			tags := make([]typing.ITag, 0, len(args)-1)
			for _, n := range args[1:] {
				tag, err := s.Tag(n)
				if err != nil {
					return err
				}
				tags = append(tags, tag)
			}
			sub := t.Sub(tags...)
			if v := sub.Violation(); v != nil {
				return v
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%v\tnone: %v\n", sub, cast.ToString(sub.None()))
			for op := range sub.Symbols(typing.SymbolKind_Operation) {
				if !op.ID().IsPrivate() {
					fmt.Fprintln(out, op)
				}
			}
			return nil
		},
	}
}
