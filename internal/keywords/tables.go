package keywords

// Built-in vocabularies. Each table is a plain name list; sets and the
// catalog are derived from them once at package initialization.

var jsKeywords = []string{
	"await", "break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "enum", "export", "extends", "false",
	"finally", "for", "function", "if", "implements", "import", "in", "instanceof",
	"interface", "let", "new", "null", "package", "private", "protected", "public",
	"return", "super", "switch", "this", "throw", "true", "try", "typeof",
	"var", "void", "while", "with", "yield",
}

var tsExtra = []string{
	"any", "unknown", "never", "object", "string", "number", "boolean",
	"symbol", "bigint", "undefined",
}

var jsGlobals = []string{
	"require", "module", "exports", "__dirname", "__filename",
	"undefined", "NaN", "Infinity", "globalThis", "console", "process", "Buffer",
	"setTimeout", "setInterval", "clearTimeout", "clearInterval",
	"Promise", "Map", "Set", "WeakMap", "WeakSet", "Symbol", "Proxy", "Reflect",
	"JSON", "Math", "Date", "Array", "Object", "Function", "Number", "String",
	"Boolean", "RegExp", "Error", "eval", "parseInt", "parseFloat",
	"isNaN", "isFinite", "decodeURI", "encodeURI", "decodeURIComponent", "encodeURIComponent",
}

var reactCore = []string{
	"React", "Component", "PureComponent", "Fragment", "StrictMode", "Suspense",
	"lazy", "memo", "createElement", "cloneElement", "createContext", "createRef",
	"forwardRef", "useImperativeHandle",
}

var jsxIntrinsic = []string{
	"div", "span", "p", "a", "img", "input", "button", "form", "label", "select",
	"textarea", "ul", "ol", "li", "table", "thead", "tbody", "tr", "td", "th",
	"header", "footer", "main", "section", "article", "nav", "aside",
	"h1", "h2", "h3", "h4", "h5", "h6", "br", "hr",
}

var jsxProps = []string{
	"className", "class", "style", "onClick", "onChange", "onSubmit", "onBlur", "onFocus",
	"onKeyDown", "onKeyUp", "children", "ref", "key", "id", "type", "value", "defaultValue",
	"placeholder", "disabled", "checked", "href", "src", "alt", "target", "dangerouslySetInnerHTML",
}

var reactNative = []string{
	"View", "Text", "Image", "ScrollView", "TextInput", "FlatList", "SectionList",
	"TouchableOpacity", "TouchableHighlight", "TouchableWithoutFeedback", "Pressable",
	"Button", "Switch", "ActivityIndicator", "Alert", "StyleSheet", "Dimensions",
	"Platform", "KeyboardAvoidingView", "SafeAreaView", "Modal", "StatusBar",
	"RefreshControl", "VirtualizedList",
}

var reactRedux = []string{
	"useSelector", "useDispatch", "useStore", "Provider", "connect", "batch",
}

var lodash = []string{
	// Array
	"chunk", "compact", "concat", "difference", "differenceBy", "differenceWith",
	"drop", "dropRight", "dropRightWhile", "dropWhile", "fill", "findIndex", "findLastIndex",
	"first", "flatten", "flattenDeep", "flattenDepth", "fromPairs", "head", "indexOf",
	"initial", "intersection", "intersectionBy", "intersectionWith", "join", "last",
	"lastIndexOf", "nth", "pull", "pullAll", "pullAllBy", "pullAllWith", "pullAt",
	"remove", "reverse", "slice", "sortedIndex", "sortedIndexBy", "sortedIndexOf",
	"sortedLastIndex", "sortedLastIndexBy", "sortedLastIndexOf", "sortedUniq", "sortedUniqBy",
	"tail", "take", "takeRight", "takeRightWhile", "takeWhile", "union", "unionBy",
	"unionWith", "uniq", "uniqBy", "uniqWith", "unzip", "unzipWith", "without",
	"xor", "xorBy", "xorWith", "zip", "zipObject", "zipObjectDeep", "zipWith",
	// Collection
	"countBy", "each", "eachRight", "every", "filter", "find", "findLast",
	"flatMap", "flatMapDeep", "flatMapDepth", "forEach", "forEachRight", "groupBy",
	"includes", "invokeMap", "keyBy", "map", "orderBy", "partition", "reduce",
	"reduceRight", "reject", "sample", "sampleSize", "shuffle", "size", "some", "sortBy",
	// Function
	"after", "ary", "before", "bind", "bindKey", "curry", "curryRight", "debounce",
	"defer", "delay", "flip", "memoize", "negate", "once", "overArgs", "partial",
	"partialRight", "rearg", "rest", "spread", "throttle", "unary", "wrap",
	// Lang
	"castArray", "clone", "cloneDeep", "cloneDeepWith", "cloneWith", "conformsTo",
	"eq", "gt", "gte", "isArguments", "isArray", "isArrayBuffer", "isArrayLike",
	"isArrayLikeObject", "isBoolean", "isBuffer", "isDate", "isElement", "isEmpty",
	"isEqual", "isEqualWith", "isError", "isFinite", "isFunction", "isInteger",
	"isLength", "isMap", "isMatch", "isMatchWith", "isNative", "isNil", "isNull",
	"isNumber", "isObject", "isObjectLike", "isPlainObject", "isRegExp", "isSafeInteger",
	"isSet", "isString", "isSymbol", "isTypedArray", "isUndefined", "isWeakMap",
	"isWeakSet", "lt", "lte", "toArray", "toFinite", "toInteger", "toLength",
	"toNumber", "toPlainObject", "toSafeInteger", "toString",
	// Math and Number
	"add", "ceil", "divide", "floor", "max", "maxBy", "mean", "meanBy", "min",
	"minBy", "multiply", "round", "subtract", "sum", "sumBy",
	"clamp", "inRange", "random",
	// Object
	"assign", "assignIn", "assignInWith", "assignWith", "at", "create", "defaults",
	"defaultsDeep", "entries", "entriesIn", "extend", "extendWith", "findKey",
	"findLastKey", "forIn", "forInRight", "forOwn", "forOwnRight", "get", "has",
	"hasIn", "invert", "invertBy", "invoke", "keys", "keysIn", "mapKeys", "mapValues",
	"merge", "mergeWith", "omit", "omitBy", "pick", "pickBy", "result", "set",
	"setWith", "toPairs", "toPairsIn", "transform", "unset", "update", "updateWith",
	"values", "valuesIn",
	// Seq
	"chain", "tap", "thru",
	// String
	"camelCase", "capitalize", "deburr", "endsWith", "escape", "escapeRegExp",
	"kebabCase", "lowerCase", "lowerFirst", "pad", "padEnd", "padStart", "parseInt",
	"repeat", "replace", "snakeCase", "split", "startCase", "startsWith", "template",
	"toLower", "toUpper", "trim", "trimEnd", "trimStart", "truncate", "unescape",
	"upperCase", "upperFirst", "words",
	// Util
	"attempt", "bindAll", "cond", "conforms", "constant", "defaultTo", "flow",
	"flowRight", "identity", "iteratee", "matches", "matchesProperty", "method",
	"methodOf", "mixin", "noConflict", "noop", "nthArg", "over", "overEvery",
	"overSome", "property", "propertyOf", "range", "rangeRight", "runInContext",
	"stubArray", "stubFalse", "stubObject", "stubString", "stubTrue", "times",
	"toPath", "uniqueId",
	// Date
	"now",
}

var jsArrayMethods = []string{
	"at", "concat", "copyWithin", "entries", "every", "fill", "filter", "find",
	"findIndex", "findLastIndex", "flat", "flatMap", "forEach", "includes",
	"indexOf", "join", "keys", "lastIndexOf", "map", "pop", "push", "reduce",
	"reduceRight", "reverse", "shift", "slice", "some", "sort", "splice",
	"toLocaleString", "toString", "unshift", "values",
}

var jsObjectMethods = []string{
	"assign", "create", "defineProperties", "defineProperty", "entries", "freeze",
	"fromEntries", "getOwnPropertyDescriptor", "getOwnPropertyDescriptors",
	"getOwnPropertyNames", "getPrototypeOf", "hasOwn", "is", "isExtensible",
	"isFrozen", "isSealed", "keys", "preventExtensions", "seal", "setPrototypeOf",
	"values",
}

// reactHooks are preserved unless Config.AbbreviateFrameworkHooks is set.
var reactHooks = []string{
	"useState", "useEffect", "useContext", "useReducer", "useCallback",
	"useMemo", "useRef", "useImperativeHandle", "useLayoutEffect", "useDebugValue",
}

var rubyKeywords = []string{
	"alias", "and", "begin", "break", "case", "class", "def", "defined?",
	"do", "else", "elsif", "end", "ensure", "false", "for", "if", "in",
	"module", "next", "nil", "not", "or", "redo", "rescue", "retry",
	"return", "self", "super", "then", "true", "undef", "unless", "until",
	"when", "while", "yield",
}

var rubySpecial = []string{
	"__FILE__", "__LINE__", "__ENCODING__", "__dir__", "__method__", "__callee__",
	"BEGIN", "END",
}

var rubyKernel = []string{
	"require", "require_relative", "load", "autoload", "autoload?",
	"puts", "p", "print", "printf", "gets", "readline", "readlines", "open", "putc",
	"Array", "Hash", "Integer", "Float", "String", "Complex", "Rational",
	"raise", "fail", "catch", "throw", "lambda", "proc",
	"exit", "exit!", "abort", "at_exit", "exec", "fork", "spawn", "system",
	"eval", "rand", "srand", "sleep", "loop", "warn", "sprintf", "format",
	"binding", "block_given?", "caller", "tap", "then", "yield_self",
}

var rubyObject = []string{
	"nil?", "empty?", "to_s", "to_i", "to_f", "to_a", "to_h", "inspect",
	"class", "is_a?", "kind_of?", "instance_of?", "respond_to?", "frozen?",
}

var railsController = []string{
	"before_action", "after_action", "around_action", "skip_before_action", "skip_after_action", "skip_around_action",
	"render", "redirect_to", "redirect_back", "redirect_back_or_to", "head",
	"params", "request", "response", "session", "cookies", "flash",
	"respond_to", "respond_with",
}

var railsActiveRecord = []string{
	"where", "select", "distinct", "excluding", "order", "reorder", "group", "having",
	"limit", "offset", "joins", "left_joins", "includes", "preload", "eager_load",
	"find", "find_by", "first", "last", "take", "exists?", "any?",
	"count", "sum", "average", "minimum", "maximum", "pluck",
	"create_with", "readonly", "and", "or",
	"belongs_to", "has_many", "has_one", "has_and_belongs_to_many",
	"dependent", "through", "source", "class_name", "foreign_key",
	"validates", "validates_presence_of", "validates_uniqueness_of", "validates_length_of",
	"validates_format_of", "validates_numericality_of", "validate", "valid?", "invalid?",
	"before_save", "after_save", "before_create", "after_create", "before_update", "after_update",
	"before_destroy", "after_destroy",
	"save", "save!", "create", "create!", "update", "update!", "destroy", "destroy!",
	"new", "build", "reload", "persisted?", "new_record?",
}

var railsRoutes = []string{
	"root", "resources", "resource", "member", "collection", "namespace",
	"link_to", "button_to", "form_for", "form_with", "form_tag",
	"content_tag", "tag", "image_tag", "stylesheet_link_tag", "javascript_include_tag",
}

var rubyEnumerable = []string{
	"all?", "any?", "chain", "chunk", "chunk_while", "collect", "collect_concat",
	"count", "cycle", "detect", "drop", "drop_while", "each", "each_cons",
	"each_entry", "each_slice", "each_with_index", "each_with_object", "entries",
	"filter", "filter_map", "find", "find_all", "find_index", "first", "flat_map",
	"grep", "grep_v", "group_by", "include?", "inject", "lazy", "map", "max",
	"max_by", "member?", "min", "min_by", "minmax", "minmax_by", "none?", "one?",
	"partition", "reduce", "reject", "reverse_each", "select", "slice_after",
	"slice_before", "slice_when", "sort", "sort_by", "sum", "take", "take_while",
	"tally", "to_a", "to_h", "uniq", "zip",
}
