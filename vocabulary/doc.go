// Package vocabulary loads the reference drawings of a symbol set and turns
// them into a definition.Registry.
//
// A symbol directory holds one picture per symbol and, optionally, a
// symbols.yaml manifest:
//
//	function: "#ff7ff8"          # function colour of program pictures
//	symbols:
//	  - name: pic                # registered first: frames of other symbols
//	    file: pic.png
//	  - name: add
//	    file: add.png
//	  - name: dir
//	    file: dir.png
//	    frame: pic               # dir.png holds a pic frame; its innards are the symbol
//	    inputs: ["#7fc9ff"]
//	    outputs: ["#7fff8e"]
//
// Symbols are registered in manifest order, which is also the order Identify
// tries them in. Without a manifest the built-in set (pic, add, mul, sub,
// div, dir) is assumed.
//
// Decoded pictures are kept in an LRU cache keyed by absolute path, so a
// file shared by several symbols is decoded once.
package vocabulary
