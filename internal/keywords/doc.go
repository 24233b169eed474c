// Package keywords decides which identifiers must survive cloaking verbatim.
//
// The built-in vocabulary covers the JavaScript family (language keywords,
// runtime globals, React and React Native, Redux, Lodash, Array and Object
// methods), TypeScript type keywords, and Ruby with Rails. Users extend it
// per language through [Config]: Add and Legacy force a name to be kept,
// Exclude lets a default name be abbreviated. React hooks are kept unless
// [Config.AbbreviateFrameworkHooks] is set.
//
// The tables are built once at init and never mutated.
package keywords
