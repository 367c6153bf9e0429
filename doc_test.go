package trie

import "fmt"

func Example() {
	words := []string{"bear", "bull", "stock", "bell"}
	t, err := Build(words)
	if err != nil {
		panic(err)
	}

	fmt.Println(t.Search("b", 0))
	fmt.Println(t.Search("be", 0))
	fmt.Println(t.Search("z", 0))

	// Output:
	// [bear bell bull]
	// [bear bell]
	// []
}

func Example_tree() {
	t, _ := Build([]string{"cat", "cars", "cart"})
	fmt.Print(t)

	// Output:
	// ca
	//   t [0]
	//   r
	//     s [1]
	//     t [2]
}

func Example_conflict() {
	_, err := Build([]string{"a", "ab"})
	fmt.Println(err)

	// Output:
	// trie: word 1 ("ab"): conflicting entry: extends word 0
}

func Example_generic() {
	type Product struct {
		Name string
		ID   int
	}
	g, err := BuildG([]Product{{"ipad", 1}, {"iphone", 2}, {"mac", 3}}, func(p Product) string { return p.Name })
	if err != nil {
		panic(err)
	}
	for _, p := range g.Complete("mac") {
		fmt.Println(p.Name, p.ID)
	}
	// Output:
	// mac 3
}
