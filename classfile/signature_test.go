package classfile

import (
	"strings"
	"testing"
)

func TestParseMethodSignature(t *testing.T) {
	tests := []struct {
		signature  string
		typeParams string
		params     string
		ret        string
	}{
		{"()V", "", "", "void"},
		{"(I[JLjava/lang/String;)Z", "", "int, long[], java.lang.String", "boolean"},
		{"([[Ljava/lang/Object;)[B", "", "java.lang.Object[][]", "byte[]"},
		{"(Ljava/util/Map$Entry;)V", "", "java.util.Map.Entry", "void"},
		{"<T:Ljava/lang/Object;>(Ljava/util/List<+TT;>;)TT;", "T", "java.util.List<? extends T>", "T"},
		{"(Ljava/util/Map<Ljava/lang/String;*>;Ljava/util/Comparator<-TE;>;)V", "", "java.util.Map<java.lang.String, ?>, java.util.Comparator<? super E>", "void"},
		{"<K::Ljava/lang/Comparable<TK;>;V:Ljava/lang/Object;>()Ljava/util/Map<TK;TV;>;^Ljava/io/IOException;", "K, V", "", "java.util.Map<K, V>"},
		{"(La/Outer<TT;>.Inner<TU;>;)V", "", "a.Outer<T>.Inner<U>", "void"},
	}
	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			ms, err := ParseMethodSignature(tt.signature)
			if err != nil {
				t.Fatalf("ParseMethodSignature() error = %v", err)
			}
			if got := strings.Join(ms.TypeParameters, ", "); got != tt.typeParams {
				t.Errorf("TypeParameters = %q, want %q", got, tt.typeParams)
			}
			if got := strings.Join(ms.Parameters, ", "); got != tt.params {
				t.Errorf("Parameters = %q, want %q", got, tt.params)
			}
			if ms.Return != tt.ret {
				t.Errorf("Return = %q, want %q", ms.Return, tt.ret)
			}
		})
	}
}

func TestParseMethodSignatureErrors(t *testing.T) {
	for _, sig := range []string{"", "I", "(", "(Q)V", "(Ljava/lang/String)V", "(Ljava/util/List<TT;)V", "<T>()V"} {
		if _, err := ParseMethodSignature(sig); err == nil {
			t.Errorf("ParseMethodSignature(%q) succeeded, want error", sig)
		}
	}
}

func TestClassTypeParameters(t *testing.T) {
	tests := []struct {
		signature string
		want      string
	}{
		{"Ljava/lang/Object;", ""},
		{"<T:Ljava/lang/Object;>Ljava/lang/Object;", "T"},
		{"<K:Ljava/lang/Object;V::Ljava/lang/Comparable<TV;>;:Ljava/io/Serializable;>Ljava/util/AbstractMap<TK;TV;>;", "K, V"},
		{"<E:Ljava/lang/Enum<TE;>;>Ljava/lang/Object;", "E"},
		{"<A:[Ljava/lang/Object;B:TA;>Ljava/lang/Object;", "A, B"},
	}
	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			params, err := ClassTypeParameters(tt.signature)
			if err != nil {
				t.Fatalf("ClassTypeParameters() error = %v", err)
			}
			if got := strings.Join(params, ", "); got != tt.want {
				t.Errorf("ClassTypeParameters() = %q, want %q", got, tt.want)
			}
		})
	}
}
