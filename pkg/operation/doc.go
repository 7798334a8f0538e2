/*
Package operation drives a sheetcalc run.

	+-------------+      +-------------+      +-------------+
	|   sheetio   | ---> |    table    | ---> |   sheetio   |
	| (read file) |      | (parse/calc)|      | (atomic out)|
	+-------------+      +------+------+      +-------------+
	                            |
	                     +------+------+
	                     |    arith    |
	                     | (elementwise)|
	                     +-------------+

🔄 Flow:
1. Read the whole input file
2. Parse it with the configured delimiter and line offset
3. Build one CalculationOperation per configured calculation, failing on bad operators
4. Execute them in order, each resolving its selectors against the current headers
5. Serialize and write the output only when every calculation succeeded

Calculations never run concurrently with each other; a later calculation may
use a column appended by an earlier one. Only the elementwise step inside
arith.Apply is parallel.

🔍 Example:

	runner := operation.NewRunner(operation.Options{Logger: userLogger})
	results, err := runner.RunSheet(ctx, operation.SheetOperation{
		Input:  "input.txt",
		Output: "output.txt",
		Config: cfg,
		Files:  sheetio.New("."),
	})
*/
package operation
