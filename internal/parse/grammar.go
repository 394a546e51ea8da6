package parse

// buildRuleRegistry constructs the full named-rule table. Comments above
// each entry give the rule in the same right-hand-side notation the
// original grammar notes use, so the table can be read as documentation
// without cross-referencing prose elsewhere.
//
// Four keys here are registered twice, carried over from a merge of two
// grammar iterations: "null", "optional_config_extension", and
// "config_decl" are reinserted identically; "config_document" changes
// quantifier from ZeroOrMore to OneOrMore on its second registration. The
// registry keeps the last write for each, so config_document ends up
// OneOrMore - at least one config block is required once any config
// syntax is present.
//
// A few child names below are never registered: "on" (from
// on_optional_trait), "close_culry" used in place of "close_curly" in
// enum_decl, "open_culry" used in place of "open_curly" in attr_decl, and
// "const" (from optional_const; the keyword rule is named "constant").
// Resolving any of them through Lookup panics as a grammar bug, which is
// the documented behavior for any unresolved rule name.
func buildRuleRegistry() *Registry {
	r := newRegistry()

	sym := func(name, tokenLabel string) {
		r.set(name, match(tokenLabel))
	}
	sym("open_curly", "_open_curly")
	sym("close_curly", "_close_curly")
	sym("comma", "_comma")
	sym("equal", "_equal")
	sym("greater", "_greater")
	sym("less", "_less")
	sym("plus", "_plus")
	sym("minus", "_minus")
	sym("star", "_star")
	sym("period", "_period")
	sym("slash", "_slash")
	sym("hash", "_hash")
	sym("open_paren", "_open_paren")
	sym("close_paren", "_close_paren")
	sym("open_bracket", "_open_bracket")
	sym("close_bracket", "_close_bracket")
	sym("exclamation", "_exclamation")
	sym("question_mark", "_question_mark")
	sym("colon", "_colon")
	sym("pipe", "_pipe")
	sym("let", "_let")
	sym("return", "_return")
	sym("if", "_if")
	sym("else", "_else")
	sym("switch", "_switch")
	sym("case", "_case")
	sym("default", "_default")
	sym("fail", "_fail")
	sym("otherwise", "_otherwise")
	sym("for", "_for")
	sym("in", "_in")
	sym("while", "_while")
	sym("break", "_break")
	sym("continue", "_continue")
	sym("with", "_with")
	sym("isa", "_isa")
	sym("app", "_app")
	sym("lib", "_lib")
	sym("ui", "_ui")
	sym("service", "_service")
	sym("test", "_test")
	sym("log", "_log")
	sym("config", "_config")
	sym("function", "_function")
	sym("struct", "_struct")
	sym("enum", "_enum")
	sym("trait", "_trait")
	sym("impl", "_impl")
	sym("attribute", "_attribute")
	sym("self", "_self")
	sym("public", "_public")
	sym("mutable", "_mutable")
	sym("constant", "_constant")
	sym("once", "_once")
	sym("unsafe", "_unsafe")
	sym("use", "_use")
	sym("as", "_as")
	sym("module", "_module")
	sym("unsigned_integer", "_unsigned_integer")
	sym("integer", "_integer")
	sym("float", "_float")
	sym("boolean", "_boolean")
	sym("character", "_character")
	sym("void", "_void")
	sym("false", "_false")
	sym("true", "_true")
	sym("null", "_null")
	sym("f32", "_f32")
	sym("f64", "_f64")
	sym("i8", "_i8")
	sym("i16", "_i16")
	sym("i32", "_i32")
	sym("i64", "_i64")
	sym("u8", "_u8")
	sym("u16", "_u16")
	sym("u32", "_u32")
	sym("u64", "_u64")
	sym("sql", "_sql")

	// bool_literal: true || false
	r.set("bool_literal", orOnce("true", "false"))
	// string_literal: _string_literal
	sym("string_literal", "_string_literal")
	// number_literal: _number_literal
	sym("number_literal", "_number_literal")
	// identifier: _word
	sym("identifier", "_word")
	// null: _null
	sym("null", "_null")
	// literal: string_literal || number_literal || bool_literal || null
	r.set("literal", orOnce("string_literal", "number_literal", "bool_literal", "null"))
	// external_identifier_tail: (double_colon && identifier)*
	r.set("external_identifier_tail", and(ZeroOrMore, "double_colon", "identifier"))
	// external_identifier: identifier && external_identifier_tail
	r.set("external_identifier", andOnce("identifier", "external_identifier_tail"))
	// identifier_part: external_identifier || config || string_literal || number_literal || bool_literal
	r.set("identifier_part", orOnce("external_identifier", "config", "string_literal", "number_literal", "bool_literal"))
	// additional_identifier_part: (period && identifier)*
	r.set("additional_identifier_part", and(ZeroOrMore, "period", "identifier"))
	// qualified_identifier: identifier_part && additional_identifier_part
	r.set("qualified_identifier", andOnce("identifier_part", "additional_identifier_part"))
	// literal_or_identifier: literal || qualified_identifier
	r.set("literal_or_identifier", orOnce("literal", "qualified_identifier"))
	// optional_generic_of_decl: (colon && data_type)?
	r.set("optional_generic_of_decl", and(ZeroOrOne, "colon", "data_type"))
	// generics: (external_identifier && optional_generic_of_decl && optional_comma)+
	r.set("generics", and(OneOrMore, "external_identifier", "optional_generic_of_decl", "optional_comma"))
	// optional_generics: (less && generics && greater)?
	r.set("optional_generics", and(ZeroOrOne, "less", "generics", "greater"))
	// user_type_or_generic: external_identifier && optional_generics
	r.set("user_type_or_generic", andOnce("external_identifier", "optional_generics"))
	// base_data_type: integer || float || boolean || character || user_type_or_generic
	r.set("base_data_type", orOnce("integer", "float", "boolean", "character", "user_type_or_generic"))
	// array_type: open_bracket && data_type && close_bracket
	r.set("array_type", andOnce("open_bracket", "data_type", "close_bracket"))
	// data_type: base_data_type || array_type
	r.set("data_type", orOnce("base_data_type", "array_type"))
	// optional_data_type: (colon && data_type)?
	r.set("optional_data_type", and(ZeroOrOne, "colon", "data_type"))
	// alias: _word
	sym("alias", "_word")
	// double_colon: colon && colon
	r.set("double_colon", andOnce("colon", "colon"))
	// optional_comma: comma?
	r.set("optional_comma", and(ZeroOrOne, "comma"))
	// semicolon: _semicolon (no lexer pattern emits this label, so
	// optional_semicolon always matches zero tokens)
	sym("semicolon", "_semicolon")
	// optional_semicolon: semicolon*
	r.set("optional_semicolon", and(ZeroOrMore, "semicolon"))
	// boolean_equals: equal && equal
	r.set("boolean_equals", andOnce("equal", "equal"))
	// boolean_less: less
	r.set("boolean_less", andOnce("less"))
	// boolean_greater: greater
	r.set("boolean_greater", andOnce("greater"))
	// boolean_not_equal: exclamation && equal
	r.set("boolean_not_equal", andOnce("exclamation", "equal"))
	// boolean_greater_or_equal: greater && equal
	r.set("boolean_greater_or_equal", andOnce("greater", "equal"))
	// boolean_less_or_equal: less && equal
	r.set("boolean_less_or_equal", andOnce("less", "equal"))
	// comparison: boolean_equals || boolean_less || boolean_greater || boolean_not_equal || boolean_greater_or_equal || boolean_less_or_equal
	r.set("comparison", orOnce("boolean_equals", "boolean_less", "boolean_greater", "boolean_not_equal", "boolean_greater_or_equal", "boolean_less_or_equal"))
	// multiply: star
	r.set("multiply", andOnce("star"))
	// divide: slash
	r.set("divide", andOnce("slash"))
	// dereference_instance_member: period
	r.set("dereference_instance_member", andOnce("period"))
	// dereference_const_member: double_colon
	r.set("dereference_const_member", andOnce("double_colon"))
	// binary_operator: plus || minus || multiply || divide || dereference_instance_member || dereference_const_member || comparison
	r.set("binary_operator", orOnce("plus", "minus", "multiply", "divide", "dereference_instance_member", "dereference_const_member", "comparison"))
	// not_operator: exclamation
	r.set("not_operator", andOnce("exclamation"))
	// minus_operator: minus
	r.set("minus_operator", andOnce("minus"))
	// unary_operator: exclamation || minus
	r.set("unary_operator", orOnce("exclamation", "minus"))
	// log_decl: log && open_paren && string_literal && close_paren && optional_semicolon
	r.set("log_decl", andOnce("log", "open_paren", "string_literal", "close_paren", "optional_semicolon"))
	// attr_metadata: identifier && colon && literal
	r.set("attr_metadata", andOnce("identifier", "colon", "literal"))
	// optional_attr_metadata_next: (optional_comma && attr_metadata)*
	r.set("optional_attr_metadata_next", and(ZeroOrMore, "optional_comma", "attr_metadata"))
	// optional_attr_metadata: (attr_metadata && optional_attr_metadata_next)?
	r.set("optional_attr_metadata", and(ZeroOrOne, "attr_metadata", "optional_attr_metadata_next"))
	// optional_attr_metadata_group: (open_curly && optional_attr_metadata && close_curly)*
	r.set("optional_attr_metadata_group", and(ZeroOrMore, "open_curly", "optional_attr_metadata", "close_curly"))
	// attr_tag: hash && external_identifier && optional_attr_metadata_group
	r.set("attr_tag", andOnce("hash", "external_identifier", "optional_attr_metadata_group"))
	// optional_attr_tags: (attr_tag)*
	r.set("optional_attr_tags", and(ZeroOrMore, "attr_tag"))
	// enum_member: identifier
	r.set("enum_member", andOnce("identifier"))
	// enum_members: (enum_member && optional_comma)*
	r.set("enum_members", and(ZeroOrMore, "enum_member", "optional_comma"))
	// enum_decl: optional_attr_tags && enum && open_curly && enum_members && close_curly
	r.set("enum_decl", andOnce("optional_attr_tags", "enum", "open_curly", "enum_members", "close_culry"))
	// impl_statement: function_decl
	r.set("impl_statement", andOnce("function_decl"))
	// impl_body: (optional_const && impl_statement)*
	r.set("impl_body", and(ZeroOrMore, "optional_const", "impl_statement"))
	// on_optional_trait: (on && identifier && optional_generics)?
	r.set("on_optional_trait", and(ZeroOrOne, "on", "identifier", "optional_generics"))
	// impl_decl: optional_attr_tags && impl && identifier && on_optional_trait && open_curly && impl_body && close_curly
	r.set("impl_decl", andOnce("optional_attr_tags", "impl", "identifier", "on_optional_trait", "open_curly", "impl_body", "close_curly"))
	// optional_const: const?
	r.set("optional_const", and(ZeroOrOne, "const"))
	// trait_statement: function_signature_decl || function_decl
	r.set("trait_statement", orOnce("function_signature_decl", "function_decl"))
	// trait_body: (optional_const && trait_statement)*
	r.set("trait_body", and(ZeroOrMore, "optional_const", "trait_statement"))
	// trait_decl: optional_attr_tags && identifier && optional_generics && open_curly && trait_body && close_curly
	r.set("trait_decl", andOnce("optional_attr_tags", "identifier", "optional_generics", "open_curly", "trait_body", "close_curly"))
	// struct_member: identifier && optional_data_type
	r.set("struct_member", andOnce("identifier", "optional_data_type"))
	// struct_body: (struct_member && optional_semicolon)*
	r.set("struct_body", and(ZeroOrMore, "struct_member", "optional_semicolon"))
	// struct_decl: optional_attr_tags && struct && identifier && optional_generics && open_curly && struct_body && close_curly
	r.set("struct_decl", andOnce("optional_attr_tags", "struct", "identifier", "optional_generics", "open_curly", "struct_body", "close_curly"))
	// optional_param_qualifier: (identifier && colon)?
	r.set("optional_param_qualifier", and(ZeroOrOne, "identifier", "colon"))
	// params: (optional_param_qualifier && expression && optional_comma)*
	r.set("params", and(ZeroOrMore, "optional_param_qualifier", "expression", "optional_comma"))
	// function_invocation: qualified_identifier && open_paren && params && close_paren
	r.set("function_invocation", andOnce("qualified_identifier", "open_paren", "params", "close_paren"))
	// fail_invocation: fail && open_paren && params && close_paren
	r.set("fail_invocation", andOnce("fail", "open_paren", "params", "close_paren"))
	// variable_literal_invocation: function_invocation || literal_or_identifier
	r.set("variable_literal_invocation", orOnce("function_invocation", "literal_or_identifier"))
	// struct_constructor_list_entry: literal_or_identifier && optional_comma
	r.set("struct_constructor_list_entry", andOnce("literal_or_identifier", "optional_comma"))
	// struct_constructor_list_entries: struct_constructor_list_entry*
	r.set("struct_constructor_list_entries", and(ZeroOrMore, "struct_constructor_list_entry"))
	// struct_constructor_list: open_bracket && struct_constructor_list_entries && close_bracket
	r.set("struct_constructor_list", andOnce("open_bracket", "struct_constructor_list_entries", "close_bracket"))
	// struct_constructor_map_entry: identifier && colon && literal_or_identifier && optional_comma
	r.set("struct_constructor_map_entry", andOnce("identifier", "colon", "literal_or_identifier", "optional_comma"))
	// struct_constructor_map_entries: struct_constructor_map_entry*
	r.set("struct_constructor_map_entries", and(ZeroOrMore, "struct_constructor_map_entry"))
	// struct_constructor_map: open_curly && struct_constructor_map_entries && close_curly
	r.set("struct_constructor_map", andOnce("open_curly", "struct_constructor_map_entries", "close_curly"))
	// struct_constructor: identifier && struct_constructor_map
	r.set("struct_constructor", andOnce("identifier", "struct_constructor_map"))
	// optional_config_extension: (colon && identifier)?
	r.set("optional_config_extension", and(ZeroOrOne, "colon", "identifier"))
	// config_decl: config && identifier && optional_config_extension && config_map
	r.set("config_decl", andOnce("config", "identifier", "optional_config_extension", "config_map"))
	// config_document: config_decl* (superseded below by the OneOrMore redefinition)
	r.set("config_document", and(ZeroOrMore, "config_decl"))
	// optional_range_inclusive: equal?
	r.set("optional_range_inclusive", and(ZeroOrOne, "equal"))
	// range_expression: open_bracket && literal_or_identifier && period && period && optional_range_inclusive && literal_or_identifier && close_bracket
	r.set("range_expression", andOnce("open_bracket", "literal_or_identifier", "period", "period", "optional_range_inclusive", "literal_or_identifier", "close_bracket"))
	// binary_operation: variable_literal_invocation && binary_operator && expression
	r.set("binary_operation", andOnce("variable_literal_invocation", "binary_operator", "expression"))
	// unary_operation: unary_operator && expression
	r.set("unary_operation", andOnce("unary_operator", "expression"))
	// cast_operation: variable_literal_invocation && as && data_type
	r.set("cast_operation", andOnce("variable_literal_invocation", "as", "data_type"))
	// expression_group: open_paren && expression && close_paren
	r.set("expression_group", andOnce("open_paren", "expression", "close_paren"))
	// expression_part: function_invocation || struct_constructor || expression_group || binary_operation || unary_operation || variable_literal_invocation || range_expression
	r.set("expression_part", orOnce("function_invocation", "struct_constructor", "expression_group", "binary_operation", "unary_operation", "variable_literal_invocation", "range_expression"))
	// trailing_binary_expression_part: (binary_operator && expression)*
	r.set("trailing_binary_expression_part", and(ZeroOrMore, "binary_operator", "expression"))
	// expression: expression_part && trailing_binary_expression_part
	r.set("expression", andOnce("expression_part", "trailing_binary_expression_part"))
	// optional_expression: expression?
	r.set("optional_expression", and(ZeroOrOne, "expression"))
	// variable_declaration: let && identifier && optional_data_type
	r.set("variable_declaration", andOnce("let", "identifier", "optional_data_type"))
	// variable_declaration_statement: variable_declaration && optional_semicolon
	r.set("variable_declaration_statement", andOnce("variable_declaration", "optional_semicolon"))
	// variable_or_variable_declaration: qualified_identifier || variable_declaration
	r.set("variable_or_variable_declaration", orOnce("qualified_identifier", "variable_declaration"))
	// assignment: variable_or_variable_declaration && equal && expression && optional_semicolon
	r.set("assignment", andOnce("variable_or_variable_declaration", "equal", "expression", "optional_semicolon"))
	// simple_statement: assignment || expression || variable_declaration_statement
	r.set("simple_statement", orOnce("assignment", "expression", "variable_declaration_statement"))
	// while_loop_statement: while && optional_expression && block
	r.set("while_loop_statement", andOnce("while", "optional_expression", "block"))
	// for_loop_statement: for && identifier && optional_data_type && in && expression && block
	r.set("for_loop_statement", andOnce("for", "identifier", "optional_data_type", "in", "expression", "block"))
	// return_statement: return && expression && optional_semicolon
	r.set("return_statement", andOnce("return", "expression", "optional_semicolon"))
	// if_statement: if && expression && block
	r.set("if_statement", andOnce("if", "expression", "block"))
	// otherwise_action: block || expression || fail_invocation
	r.set("otherwise_action", orOnce("block", "expression", "fail_invocation"))
	// optional_otherwise: (otherwise && otherwise_action)?
	r.set("optional_otherwise", and(ZeroOrOne, "otherwise", "otherwise_action"))
	// any_statement: block || return_statement || for_loop_statement || while_loop_statement || simple_statement || if_statement || fail_invocation
	r.set("any_statement", orOnce("block", "return_statement", "for_loop_statement", "while_loop_statement", "simple_statement", "if_statement", "fail_invocation"))
	// statements: (any_statement && optional_otherwise)*
	r.set("statements", and(ZeroOrMore, "any_statement", "optional_otherwise"))
	// block_no_otherwise: open_curly && statements && close_curly
	r.set("block_no_otherwise", andOnce("open_curly", "statements", "close_curly"))
	// block: block_no_otherwise && optional_otherwise
	r.set("block", andOnce("block_no_otherwise", "optional_otherwise"))
	// optional_param_value: (equal && literal)?
	r.set("optional_param_value", and(ZeroOrOne, "equal", "literal"))
	// function_params: (identifier && colon && data_type && optional_param_value && optional_comma)*
	r.set("function_params", and(ZeroOrMore, "identifier", "colon", "data_type", "optional_param_value", "optional_comma"))
	// function_params_group: open_paren && function_params && close_paren
	r.set("function_params_group", andOnce("open_paren", "function_params", "close_paren"))
	// optional_entry_point_decl: (app || test || lib || service || ui)?
	r.set("optional_entry_point_decl", or(ZeroOrOne, "app", "test", "lib", "service", "ui"))
	// function_name: identifier && optional_generics
	r.set("function_name", andOnce("identifier", "optional_generics"))
	// entry_or_function_decl: optional_attr_tags && optional_entry_point_decl && function && function_name && function_params_group && block_no_otherwise
	r.set("entry_or_function_decl", andOnce("optional_attr_tags", "optional_entry_point_decl", "function", "function_name", "function_params_group", "block_no_otherwise"))
	// function_signature_decl: optional_attr_tags && function && function_name && function_params_group
	r.set("function_signature_decl", andOnce("optional_attr_tags", "function", "function_name", "function_params_group"))
	// function_decl: function_signature_decl && block_no_otherwise
	r.set("function_decl", andOnce("function_signature_decl", "block_no_otherwise"))
	// attr_base_data_type: integer || float || boolean || character || identifier
	r.set("attr_base_data_type", orOnce("integer", "float", "boolean", "character", "identifier"))
	// attr_array_type: open_bracket && attr_base_data_type && close_bracket
	r.set("attr_array_type", andOnce("open_bracket", "attr_base_data_type", "close_bracket"))
	// attr_data_type: attr_base_data_type || attr_array_type
	r.set("attr_data_type", orOnce("attr_base_data_type", "attr_array_type"))
	// attr_body: (identifier && colon && attr_data_type && optional_semicolon)*
	r.set("attr_body", and(ZeroOrMore, "identifier", "colon", "attr_data_type", "optional_semicolon"))
	// attr_type: module || struct || impl || trait || function || enum || app || ui || service || lib
	r.set("attr_type", orOnce("module", "struct", "impl", "trait", "function", "enum", "app", "ui", "service", "lib"))
	// attr_types: (attr_type && optional_comma)+
	r.set("attr_types", and(OneOrMore, "attr_type", "optional_comma"))
	// optional_attr_generic_of_decl: (colon && attr_types)?
	r.set("optional_attr_generic_of_decl", and(ZeroOrOne, "colon", "attr_types"))
	// optional_attr_generic_decl: (less && identifier && optional_attr_generic_of_decl && greater)?
	r.set("optional_attr_generic_decl", and(ZeroOrOne, "less", "identifier", "optional_attr_generic_of_decl", "greater"))
	// attr_decl: attribute && identifier && optional_attr_generic_decl && use_when_config_matches_props && open_culry && attr_body && close_curly
	r.set("attr_decl", andOnce("attribute", "identifier", "optional_attr_generic_decl", "use_when_config_matches_props", "open_culry", "attr_body", "close_curly"))
	// mod_body_decls: (entry_or_function_decl || struct_decl || trait_decl || impl_decl || enum_decl || mod_decl || attr_decl)*
	r.set("mod_body_decls", or(ZeroOrMore, "entry_or_function_decl", "struct_decl", "trait_decl", "impl_decl", "enum_decl", "mod_decl", "attr_decl"))
	// optional_test: test?
	r.set("optional_test", and(ZeroOrOne, "test"))
	// mod_body: use_decls && mod_body_decls
	r.set("mod_body", andOnce("use_decls", "mod_body_decls"))
	// mod_decl: optional_attr_tags && optional_test && module && identifier && use_when_config_matches_props && open_curly && mod_body && close_curly
	r.set("mod_decl", andOnce("optional_attr_tags", "optional_test", "module", "identifier", "use_when_config_matches_props", "open_curly", "mod_body", "close_curly"))
	// use_group_part_alias: (as && alias)?
	r.set("use_group_part_alias", and(ZeroOrOne, "as", "alias"))
	// use_group_part_decl: (identifier && use_group_part_alias && optional_comma)+
	r.set("use_group_part_decl", and(OneOrMore, "identifier", "use_group_part_alias", "optional_comma"))
	// use_group_decl: double_colon && open_curly && use_group_part_decl && close_curly
	r.set("use_group_decl", andOnce("double_colon", "open_curly", "use_group_part_decl", "close_curly"))
	// use_decl_next_part: (double_colon && identifier)*
	r.set("use_decl_next_part", and(ZeroOrMore, "double_colon", "identifier"))
	// use_decl_form_2: use && identifier && use_decl_next_part && use_group_decl && optional_semicolon
	r.set("use_decl_form_2", andOnce("use", "identifier", "use_decl_next_part", "use_group_decl", "optional_semicolon"))
	// use_decl_form_1: use && identifier && use_decl_next_part && use_group_part_alias && optional_semicolon
	r.set("use_decl_form_1", andOnce("use", "identifier", "use_decl_next_part", "use_group_part_alias", "optional_semicolon"))
	// use_decls: (use_decl_form_1 || use_decl_form_2)*
	r.set("use_decls", or(ZeroOrMore, "use_decl_form_1", "use_decl_form_2"))
	// use_when_config_matches_prop: (identifier && colon && literal_or_identifier && optional_comma)+
	r.set("use_when_config_matches_prop", and(OneOrMore, "identifier", "colon", "literal_or_identifier", "optional_comma"))
	// use_when_config_matches_props: (open_bracket && use_when_config_matches_prop && close_bracket)?
	r.set("use_when_config_matches_props", and(ZeroOrOne, "open_bracket", "use_when_config_matches_prop", "close_bracket"))
	// mod_decl_next_part: (double_colon && identifier)*
	r.set("mod_decl_next_part", and(ZeroOrMore, "double_colon", "identifier"))
	// mod_name_decl: module && identifier && mod_decl_next_part && use_when_config_matches_props && optional_semicolon
	r.set("mod_name_decl", andOnce("module", "identifier", "mod_decl_next_part", "use_when_config_matches_props", "optional_semicolon"))
	// optional_mod_name_decl: mod_name_decl?
	r.set("optional_mod_name_decl", and(ZeroOrOne, "mod_name_decl"))
	// module_document: optional_mod_name_decl && mod_body
	r.set("module_document", andOnce("optional_mod_name_decl", "mod_body"))
	// config_value: literal || config_map || config_list
	r.set("config_value", orOnce("literal", "config_map", "config_list"))
	// config_list_entry: config_value && optional_comma
	r.set("config_list_entry", andOnce("config_value", "optional_comma"))
	// config_list_entries: config_list_entry*
	r.set("config_list_entries", and(ZeroOrMore, "config_list_entry"))
	// config_list: open_bracket && config_list_entries && close_bracket
	r.set("config_list", andOnce("open_bracket", "config_list_entries", "close_bracket"))
	// config_map_entry: identifier && colon && config_value && optional_comma
	r.set("config_map_entry", andOnce("identifier", "colon", "config_value", "optional_comma"))
	// config_map_entries: config_map_entry*
	r.set("config_map_entries", and(ZeroOrMore, "config_map_entry"))
	// config_map: open_curly && config_map_entries && close_curly
	r.set("config_map", andOnce("open_curly", "config_map_entries", "close_curly"))
	// optional_config_extension: (colon && identifier)? (second, identical registration)
	r.set("optional_config_extension", and(ZeroOrOne, "colon", "identifier"))
	// config_decl: config && identifier && optional_config_extension && config_map (second, identical registration)
	r.set("config_decl", andOnce("config", "identifier", "optional_config_extension", "config_map"))
	// config_document: config_decl+ (second registration: this is the one that survives)
	r.set("config_document", and(OneOrMore, "config_decl"))
	// document: config_document || module_document
	r.set("document", orOnce("config_document", "module_document"))

	return r
}

func match(matchLabels ...string) *Rule {
	return &Rule{Kind: Match, Quantifier: Once, MatchLabels: matchLabels}
}

func andOnce(children ...string) *Rule {
	return &Rule{Kind: And, Quantifier: Once, ChildNames: children}
}

func and(q Quantifier, children ...string) *Rule {
	return &Rule{Kind: And, Quantifier: q, ChildNames: children}
}

func orOnce(children ...string) *Rule {
	return &Rule{Kind: Or, Quantifier: Once, ChildNames: children}
}

func or(q Quantifier, children ...string) *Rule {
	return &Rule{Kind: Or, Quantifier: q, ChildNames: children}
}
