package path_test

import (
	"fmt"

	"lesiw.io/uri/path"
)

func ExampleNormalize() {
	fmt.Println(path.Normalize("/foo/./bar/../main.js.map", true))
	fmt.Println(path.Normalize("/../../x", true))
	fmt.Println(path.Normalize("foo/../../x", false))
	fmt.Println(path.Normalize("foo/bar/", false))
	// Output:
	// /foo/main.js.map
	// /x
	// ../x
	// foo/bar/
}

func ExampleDir() {
	fmt.Printf("%q\n", path.Dir("/dir/file"))
	fmt.Printf("%q\n", path.Dir("file"))
	// Output:
	// "/dir/"
	// ""
}
