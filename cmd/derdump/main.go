// Command derdump is a small debugging tool that prints the tag-length-
// value tree of a DER-encoded blob, labeling each tag and recursing into
// constructed (SEQUENCE/SET OF) values.
package main

func main() {
	execute()
}
