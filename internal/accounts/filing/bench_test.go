package filing

import "testing"

func BenchmarkCompose(b *testing.B) {
	pkg := examplePackage()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compose(pkg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	pkg := examplePackage()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		artifact, verrs, err := Generate(pkg)
		if err != nil {
			b.Fatal(err)
		}
		if len(verrs) > 0 {
			b.Fatalf("unexpected validation errors: %v", verrs)
		}
		if len(artifact.Data) == 0 {
			b.Fatal("empty artifact")
		}
	}
}
