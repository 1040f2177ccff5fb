package rodpage

import (
	"testing"

	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		name string
		args []*proto.RuntimeRemoteObject
		want string
	}{
		{
			name: "string",
			args: []*proto.RuntimeRemoteObject{{Type: proto.RuntimeRemoteObjectTypeString, Value: gson.New("hello world")}},
			want: "hello world",
		},
		{
			name: "number uses description",
			args: []*proto.RuntimeRemoteObject{{Type: proto.RuntimeRemoteObjectTypeNumber, Value: gson.New(42), Description: "42"}},
			want: "42",
		},
		{
			name: "boolean falls back to value",
			args: []*proto.RuntimeRemoteObject{{Type: proto.RuntimeRemoteObjectTypeBoolean, Value: gson.New(true)}},
			want: "true",
		},
		{
			name: "unserializable",
			args: []*proto.RuntimeRemoteObject{{Type: proto.RuntimeRemoteObjectTypeNumber, UnserializableValue: "NaN"}},
			want: "NaN",
		},
		{
			name: "undefined",
			args: []*proto.RuntimeRemoteObject{{Type: proto.RuntimeRemoteObjectTypeUndefined}},
			want: "undefined",
		},
		{
			name: "object",
			args: []*proto.RuntimeRemoteObject{{Type: proto.RuntimeRemoteObjectTypeObject, Description: "Array(2)"}},
			want: "Array(2)",
		},
		{
			name: "several args joined",
			args: []*proto.RuntimeRemoteObject{
				{Type: proto.RuntimeRemoteObjectTypeString, Value: gson.New("count:")},
				{Type: proto.RuntimeRemoteObjectTypeNumber, Value: gson.New(3), Description: "3"},
			},
			want: "count: 3",
		},
		{
			name: "no args",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatArgs(tt.args); got != tt.want {
				t.Errorf("formatArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}
