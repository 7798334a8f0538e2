/*
Package config loads and validates sheetcalc calculation configs.

	            +-------------+
	            |   Config    |
	            | (calcs)     |
	            +------+------+
	                   |
	      +------------+-+----------+------------+
	      |              |            |            |
	+-----+----+ +-------+--+ +-------+--+ +-------+--+
	|   TOML   | |   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+ +----------+

🎯 Purpose:
- Reads the ordered list of calculations plus line_offset and column_delimiter
- Picks the format from the file extension (.toml, .yaml, .yml, .json, .hcl)
- Rejects unknown fields, bad operators and patterns that do not compile
- Renders the template config for gen-config

🔍 Example:

	cfg, err := config.Load(ctx, "config.toml")
	if err != nil {
		return err
	}
	for _, calc := range cfg.Calculations {
		fmt.Println(calc)
	}

	data, err := config.Marshal("template.hcl", config.Template())
*/
package config
