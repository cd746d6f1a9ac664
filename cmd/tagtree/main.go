// Command tagtree parses XML-like markup files and prints the resulting tree.
//
// Usage:
//
//	# Print the tree of a file as JSON
//	tagtree parse catalog.xml
//
//	# Read from stdin and print YAML
//	cat catalog.xml | tagtree parse -o yaml
//
//	# Normalize a file: sorted attributes, no comments, 4-space indent
//	tagtree parse -o xml --indent 4 catalog.xml
//
//	# Use defaults from a config file
//	tagtree parse --config tagtree.yaml catalog.xml
package main

func main() {
	Execute()
}
