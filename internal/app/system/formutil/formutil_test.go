package formutil_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/stemboard/internal/app/system/formutil"
)

func TestSetError_Escapes(t *testing.T) {
	var b formutil.Base
	b.SetError("Name <b>is</b> required.")
	if string(b.Error) != "Name &lt;b&gt;is&lt;/b&gt; required." {
		t.Errorf("Error = %q", b.Error)
	}
}

func TestSetErrors_Joins(t *testing.T) {
	var b formutil.Base
	b.SetErrors([]string{"Name is required.", "Email is required."})
	if string(b.Error) != "Name is required.<br>Email is required." {
		t.Errorf("Error = %q", b.Error)
	}
}

func TestSetBase_Title(t *testing.T) {
	var b formutil.Base
	formutil.SetBase(&b, httptest.NewRequest("GET", "/contact", nil), "Contact Us", "/")
	if b.Title != "Contact Us" {
		t.Errorf("Title = %q", b.Title)
	}
	if b.CSRFToken != "" {
		t.Errorf("CSRFToken without middleware = %q, want empty", b.CSRFToken)
	}
}
