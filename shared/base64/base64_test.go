package base64_test

import (
	b64 "encoding/base64"
	"resthouse/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "png data uri", in: "data:image/png;base64,iVBORw0KGgo=", want: "image/png"},
		{name: "jpeg data uri", in: "data:image/jpeg;base64,/9j/4AAQ", want: "image/jpeg"},
		{name: "plain string", in: "not a data uri", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "marker before prefix end", in: ";base64,xxx", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base64.GetContentType(tt.in))
		})
	}
}

func TestDecode(t *testing.T) {
	payload := b64.StdEncoding.EncodeToString([]byte("id card bytes"))

	data, err := base64.Decode("data:image/png;base64," + payload)
	assert.NoError(t, err)
	assert.Equal(t, []byte("id card bytes"), data)

	_, err = base64.Decode("no marker here")
	assert.Error(t, err)

	_, err = base64.Decode("data:image/png;base64,!!! not base64 !!!")
	assert.Error(t, err)
}
