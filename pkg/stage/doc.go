// Package stage traverses the stage tree an apply renders from.
//
// Walk visits directories before their contents, in lexical order, and
// leaves out what never belongs in the home directory: the .git and
// .dotrs-profiles directories, .gitignore and .dotrsignore files, and
// anything matched by the patterns of a .gitignore or .dotrsignore file.
// Ignore files apply to their own directory and everything below it, and an
// ignored directory is not descended into.
package stage
