// Copyright 2025 walteh LLC
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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	calcIndent = 4  // spaces to indent calculation entries
	nameWidth  = 20 // Width for the result column name
	exprWidth  = 30 // Width for the expression
)

// 🧮 CalcOperation describes one finished column calculation
type CalcOperation struct {
	Result    string // New column header
	Left      string // Resolved left header
	Operation string // Operator symbol
	Right     string // Resolved right header
	Rows      int    // Number of rows computed
	NaNs      int    // Number of NaN results
}

// 📄 SheetOperation describes the table a run works on
type SheetOperation struct {
	Input    string // Input path
	Output   string // Output path
	Rows     int    // Data rows
	Columns  int    // Columns before any calculation
	Preamble int    // Preamble lines kept
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *SheetOperation
	operations []CalcOperation
}

// 🏭 New creates a new logger. Console lines go to console, the structured mirror goes to errOut.
func New(console, errOut io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: errOut}).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatCalcOperation formats a calculation for display
func (l *Logger) formatCalcOperation(op CalcOperation) string {
	symbol := color.New(color.FgGreen).Sprint("✓")
	status := fmt.Sprintf("%d rows", op.Rows)
	if op.NaNs > 0 {
		symbol = color.New(color.FgYellow).Sprint("~")
		status = fmt.Sprintf("%d rows, %d NaN", op.Rows, op.NaNs)
	}

	expr := fmt.Sprintf("%s %s %s", op.Left, op.Operation, op.Right)

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", calcIndent, ""),
		symbol,
		fmt.Sprintf("%-*s", nameWidth, op.Result),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", exprWidth, expr)),
		status)
}

// 📝 LogCalcOperation logs a finished calculation
func (l *Logger) LogCalcOperation(ctx context.Context, op CalcOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatCalcOperation(op))

	l.zlog.Info().
		Str("result", op.Result).
		Str("left", op.Left).
		Str("operation", op.Operation).
		Str("right", op.Right).
		Int("rows", op.Rows).
		Int("nans", op.NaNs).
		Msg("calculation")
}

// 📝 StartSheetOperation starts logging a run over one table
func (l *Logger) StartSheetOperation(ctx context.Context, op SheetOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	fmt.Fprintf(l.console, "[calculating %s]\n",
		color.New(color.FgCyan).Sprint(op.Input))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprintf("%d rows × %d columns", op.Rows, op.Columns),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprintf("%d preamble line(s)", op.Preamble))

	l.zlog.Info().
		Str("input", op.Input).
		Str("output", op.Output).
		Int("rows", op.Rows).
		Int("columns", op.Columns).
		Int("preamble", op.Preamble).
		Msg("starting sheet operation")
}

// 📝 EndSheetOperation ends the current sheet operation
func (l *Logger) EndSheetOperation(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	l.zlog.Info().
		Str("input", l.currentOp.Input).
		Int("calculations", len(l.operations)).
		Msg("sheet operation complete")

	l.currentOp = nil
	l.operations = nil
}

// 📝 LogCandidates lists the columns a selector matched, numbered from 1
func (l *Logger) LogCandidates(pattern string, indexes []int, headers []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprintf("too many matches found for pattern: '%s'", pattern))
	for i, idx := range indexes {
		fmt.Fprintf(l.console, "%*scol: %s : %s\n", calcIndent, "",
			color.New(color.Bold).Sprint(idx+1), headers[i])
	}
	l.zlog.Warn().Str("pattern", pattern).Ints("columns", indexes).Msg("ambiguous column pattern")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("sheetcalc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
