package lex

// buildPatternRegistry constructs the concrete pattern inventory in
// registration order, highest precedence first. Order matters: when two
// patterns match the same length at the same offset, the first one
// registered here wins.
func buildPatternRegistry() *Registry {
	r := newRegistry()

	r.add("_log", Text{"log"}, false)

	r.add("_let", Text{"let"}, false)

	r.add("_return", Text{"return"}, false)
	r.add("_if", Text{"if"}, false)
	r.add("_else", Text{"else"}, false)
	r.add("_switch", Text{"switch"}, false)
	r.add("_case", Text{"case"}, false)
	r.add("_default", Text{"default"}, false)
	r.add("_fail", Text{"fail"}, false)
	r.add("_otherwise", Text{"otherwise"}, false)
	r.add("_for", Text{"for"}, false)
	r.add("_in", Text{"in"}, false)
	r.add("_while", Text{"while"}, false)
	r.add("_break", Text{"break"}, false)
	r.add("_continue", Text{"continue"}, false)
	r.add("_with", Text{"with"}, false)
	r.add("_isa", Text{"isa"}, false)

	r.add("_app", Text{"app"}, false)
	r.add("_lib", Text{"lib"}, false)
	r.add("_ui", Text{"ui"}, false)
	r.add("_service", Text{"service"}, false)
	r.add("_test", Text{"test"}, false)

	r.add("_config", Text{"config"}, false)
	r.add("_function", Text{"fn"}, false)
	r.add("_struct", Text{"struct"}, false)
	r.add("_enum", Text{"enum"}, false)
	r.add("_trait", Text{"trait"}, false)
	r.add("_impl", Text{"impl"}, false)
	r.add("_attribute", Text{"attr"}, false)

	r.add("_self", Text{"self"}, false)
	r.add("_public", Text{"pub"}, false)
	r.add("_mutable", Text{"mut"}, false)
	r.add("_constant", Text{"const"}, false)
	r.add("_once", Text{"once"}, false)
	r.add("_unsafe", Text{"unsafe"}, false)

	r.add("_use", Text{"use"}, false)
	r.add("_as", Text{"as"}, false)
	r.add("_module", Text{"mod"}, false)

	r.add("_unsigned_integer", Text{"uint"}, false)
	r.add("_integer", Text{"int"}, false)
	r.add("_float", Text{"float"}, false)
	r.add("_boolean", Text{"bool"}, false)
	r.add("_character", Text{"char"}, false)
	r.add("_void", Text{"void"}, false)

	r.add("_false", Text{"false"}, false)
	r.add("_true", Text{"true"}, false)
	r.add("_null", Text{"null"}, false)

	r.add("_f32", Text{"f32"}, false)
	r.add("_f64", Text{"f64"}, false)
	r.add("_i8", Text{"i8"}, false)
	r.add("_i16", Text{"i16"}, false)
	r.add("_i32", Text{"i32"}, false)
	r.add("_i64", Text{"i64"}, false)
	r.add("_u8", Text{"u8"}, false)
	r.add("_u16", Text{"u16"}, false)
	r.add("_u32", Text{"u32"}, false)
	r.add("_u64", Text{"u64"}, false)

	r.add("_comment", commentPattern(), true)
	r.add("_sql", sqlPattern(), false)
	r.add("_string_literal", quotedStringPattern(), false)
	r.add("_number_literal", numberPattern(), false)
	r.add("_word", wordPattern(), false)

	r.add("_open_curly", Text{"{"}, false)
	r.add("_close_curly", Text{"}"}, false)
	r.add("_comma", Text{","}, false)
	r.add("_equal", Text{"="}, false)
	r.add("_greater", Text{">"}, false)
	r.add("_less", Text{"<"}, false)
	r.add("_plus", Text{"+"}, false)
	r.add("_minus", Text{"-"}, false)
	r.add("_star", Text{"*"}, false)
	r.add("_period", Text{"."}, false)
	r.add("_slash", Text{"/"}, false)
	r.add("_hash", Text{"#"}, false)
	r.add("_open_paren", Text{"("}, false)
	r.add("_close_paren", Text{")"}, false)
	r.add("_open_bracket", Text{"["}, false)
	r.add("_close_bracket", Text{"]"}, false)
	r.add("_exclamation", Text{"!"}, false)
	r.add("_question_mark", Text{"?"}, false)
	r.add("_colon", Text{":"}, false)
	r.add("_pipe", Text{"|"}, false)

	r.add("_end_of_line", Range{'\n', '\n'}, true)
	r.add("_whitespace", whitespacePattern(), true)

	return r
}

// commentPattern matches "// ..." through the end of the line: two literal
// slashes, any run of characters, then the closing newline. The middle
// wildcard run is what forces Seq's bounded-lookahead scan to find the
// newline.
func commentPattern() Matcher {
	return Seq{Children: []Matcher{
		Range{'/', '/'},
		Range{'/', '/'},
		Rep{Inner: Any{}, Quantifier: ZeroOrMore},
		Range{'\n', '\n'},
	}}
}

func sqlPattern() Matcher {
	return Seq{Children: []Matcher{
		Range{'`', '`'},
		Rep{Inner: Alt{Children: []Matcher{
			Any{},
			Text{"\\`"},
		}}, Quantifier: ZeroOrMore},
		Range{'`', '`'},
	}}
}

func quotedStringPattern() Matcher {
	double := Seq{Children: []Matcher{
		Range{'"', '"'},
		Rep{Inner: Alt{Children: []Matcher{
			Any{},
			Text{"\\\""},
		}}, Quantifier: ZeroOrMore},
		Range{'"', '"'},
	}}
	single := Seq{Children: []Matcher{
		Range{'\'', '\''},
		Rep{Inner: Alt{Children: []Matcher{
			Any{},
			Text{"\\'"},
		}}, Quantifier: ZeroOrMore},
		Range{'\'', '\''},
	}}
	return Alt{Children: []Matcher{double, single}}
}

func numberPattern() Matcher {
	hex := Alt{Children: []Matcher{
		Range{'0', '9'},
		Range{'a', 'f'},
		Range{'A', 'F'},
	}}
	hexLiteral := Seq{Children: []Matcher{
		Text{"0x"},
		Rep{Inner: hex, Quantifier: OneOrMore},
	}}
	floatLiteral := Seq{Children: []Matcher{
		Rep{Inner: Range{'0', '9'}, Quantifier: OneOrMore},
		Range{'.', '.'},
		Rep{Inner: Range{'0', '9'}, Quantifier: OneOrMore},
	}}
	decimalLiteral := Seq{Children: []Matcher{
		Rep{Inner: Range{'0', '9'}, Quantifier: OneOrMore},
	}}
	return Alt{Children: []Matcher{hexLiteral, floatLiteral, decimalLiteral}}
}

func wordPattern() Matcher {
	first := Alt{Children: []Matcher{
		Range{'a', 'z'},
		Range{'A', 'Z'},
	}}
	body := Alt{Children: []Matcher{
		Range{'a', 'z'},
		Range{'A', 'Z'},
		Range{'0', '9'},
		Range{'_', '_'},
	}}
	return Seq{Children: []Matcher{
		first,
		Rep{Inner: body, Quantifier: ZeroOrMore},
	}}
}

func whitespacePattern() Matcher {
	spaces := Rep{Inner: Text{" "}, Quantifier: OneOrMore}
	tabs := Rep{Inner: Range{'\t', '\t'}, Quantifier: OneOrMore}
	carriageReturns := Rep{Inner: Range{'\r', '\r'}, Quantifier: OneOrMore}
	return Rep{
		Inner:      Alt{Children: []Matcher{spaces, tabs, carriageReturns}},
		Quantifier: OneOrMore,
	}
}
