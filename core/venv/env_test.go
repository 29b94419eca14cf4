package venv

import "fmt"

func ExampleMapEnv_Setenv() {
	env := NewMapEnv()
	env.Setenv("A", "B")
	env.Setenv("C", "D")

	fmt.Println(env.Environ())

	// Output: [A=B C=D]
}

func ExampleMapEnv_LookupEnv() {
	env := NewMapEnv()
	env.Setenv("A", "B")

	val, ok := env.LookupEnv("A")
	fmt.Println("Existing", "val:", val, "ok:", ok)
	val, ok = env.LookupEnv("B")
	fmt.Println("Missing", "val:", val, "ok:", ok)

	// Output: Existing val: B ok: true
	// Missing val:  ok: false
}

func ExampleMapEnv_ExpandEnv() {
	env := NewMapEnv()
	env.Setenv("TEMP", "/tmp/scratch")

	fmt.Println(env.ExpandEnv("cp $TEMP/*.txt ."))

	// Output: cp /tmp/scratch/*.txt .
}

func ExampleMapEnv_Chdir() {
	env := NewMapEnv()

	wd, _ := env.Getwd()
	fmt.Println("Before:", wd)

	env.Chdir("/home/user")
	wd, _ = env.Getwd()
	fmt.Println("After:", wd)

	// Output: Before: /
	// After: /home/user
}
