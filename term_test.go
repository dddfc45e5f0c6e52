package qlam

import "testing"

// Plain t.Errorf style, matching the teacher's lambda_test.go.

func TestVarString(t *testing.T) {
	v := Var{Name: "x"}
	if v.String() != "x" {
		t.Errorf("expected 'x', got '%s'", v.String())
	}
}

func TestKetString(t *testing.T) {
	if KetZero.String() != "|0>" {
		t.Errorf("expected '|0>', got '%s'", KetZero.String())
	}
	if KetOne.String() != "|1>" {
		t.Errorf("expected '|1>', got '%s'", KetOne.String())
	}
}

func TestGateString(t *testing.T) {
	g := Gate{Symbol: "H"}
	if g.String() != "H" {
		t.Errorf("expected 'H', got '%s'", g.String())
	}
}

func TestMeasString(t *testing.T) {
	if (Meas{}).String() != "M" {
		t.Errorf("expected 'M', got '%s'", (Meas{}).String())
	}
}

func TestAbsString(t *testing.T) {
	abs := Abs{Param: "x", Body: Var{Name: "x"}}
	if abs.String() != "(λx. x)" {
		t.Errorf("expected '(λx. x)', got '%s'", abs.String())
	}
}

func TestNonlinearAbsString(t *testing.T) {
	abs := NonlinearAbs{Param: "x", Body: Var{Name: "x"}}
	if abs.String() != "(#x. x)" {
		t.Errorf("expected '(#x. x)', got '%s'", abs.String())
	}
}

func TestBangString(t *testing.T) {
	b := Bang{Inner: Var{Name: "x"}}
	if b.String() != "!(x)" {
		t.Errorf("expected '!(x)', got '%s'", b.String())
	}
}

func TestAppString(t *testing.T) {
	app := App{Func: Var{Name: "x"}, Arg: Var{Name: "y"}}
	if app.String() != "(x y)" {
		t.Errorf("expected '(x y)', got '%s'", app.String())
	}
}
