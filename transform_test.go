package keycase

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTransformer_ToCamel(t *testing.T) {
	var testCases = []struct {
		description string
		input       any
		expect      any
	}{
		{
			description: "nested object, values untouched",
			input: map[string]any{
				"user_name": "john_doe",
				"api_settings": map[string]any{
					"max_rate_limit": 1000,
				},
			},
			expect: map[string]any{
				"userName": "john_doe",
				"apiSettings": map[string]any{
					"maxRateLimit": 1000,
				},
			},
		},
		{
			description: "array of objects keeps order and length",
			input: []any{
				map[string]any{"user_name": "a"},
				map[string]any{"user_name": "b"},
			},
			expect: []any{
				map[string]any{"userName": "a"},
				map[string]any{"userName": "b"},
			},
		},
		{
			description: "nil passthrough",
			input:       nil,
			expect:      nil,
		},
		{
			description: "primitive passthrough",
			input:       "user_name",
			expect:      "user_name",
		},
		{
			description: "null element inside object",
			input:       map[string]any{"user_name": nil},
			expect:      map[string]any{"userName": nil},
		},
		{
			description: "exception entry applies at depth",
			input: map[string]any{
				"config": map[string]any{"sp_name_id_format": "email"},
			},
			expect: map[string]any{
				"config": map[string]any{"spNameIDFormat": "email"},
			},
		},
		{
			description: "preservation does not apply in this direction",
			input: map[string]any{
				"requestBody": map[string]any{"nested_field": "example"},
			},
			expect: map[string]any{
				"requestBody": map[string]any{"nestedField": "example"},
			},
		},
	}
	transformer := New()
	for _, testCase := range testCases {
		actual := transformer.ToCamel(testCase.input)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestTransformer_ToSnake(t *testing.T) {
	var testCases = []struct {
		description string
		input       any
		expect      any
	}{
		{
			description: "nested object",
			input: map[string]any{
				"userName": "john",
				"apiSettings": map[string]any{
					"maxRateLimit": 1000,
				},
			},
			expect: map[string]any{
				"user_name": "john",
				"api_settings": map[string]any{
					"max_rate_limit": 1000,
				},
			},
		},
		{
			description: "preserved key and its contents stay verbatim",
			input: map[string]any{
				"userName":    "john",
				"requestBody": map[string]any{"nested_field": "example"},
			},
			expect: map[string]any{
				"user_name":   "john",
				"requestBody": map[string]any{"nested_field": "example"},
			},
		},
		{
			description: "preserved key applies at every depth",
			input: map[string]any{
				"outerField": map[string]any{
					"requestBody": map[string]any{"someKey": 1},
				},
			},
			expect: map[string]any{
				"outer_field": map[string]any{
					"requestBody": map[string]any{"someKey": 1},
				},
			},
		},
		{
			description: "exception entry",
			input:       map[string]any{"idpSSOUrl": "https://idp.example.com/sso"},
			expect:      map[string]any{"idp_sso_url": "https://idp.example.com/sso"},
		},
		{
			description: "nil passthrough",
			input:       nil,
			expect:      nil,
		},
	}
	transformer := New()
	for _, testCase := range testCases {
		actual := transformer.ToSnake(testCase.input)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestTransformer_DeepRoundTrip(t *testing.T) {
	input := map[string]any{
		"user_name": "john",
		"roles": []any{
			map[string]any{"role_name": "admin", "access_level": 3},
			map[string]any{"role_name": "user", "access_level": 1},
		},
		"api_settings": map[string]any{"max_rate_limit": 1000},
	}
	transformer := New()
	actual := transformer.ToSnake(transformer.ToCamel(input))
	assert.EqualValues(t, input, actual)
}

func TestTransformer_InputNotMutated(t *testing.T) {
	transformer := New()
	nested := map[string]any{"max_rate_limit": 1000}
	input := map[string]any{"user_name": "john", "api_settings": nested}

	actual := transformer.ToCamel(input).(map[string]any)
	actual["userName"] = "changed"
	actual["apiSettings"].(map[string]any)["maxRateLimit"] = 0

	assert.EqualValues(t, "john", input["user_name"])
	assert.EqualValues(t, 1000, nested["max_rate_limit"])
}

func TestTransformer_ForeignPassthrough(t *testing.T) {
	type foo struct{ UserName string }
	transformer := New()

	aStruct := &foo{UserName: "john"}
	assert.Equal(t, any(aStruct), transformer.ToCamel(aStruct))

	typedMap := map[string]string{"user_name": "john"}
	actual := transformer.ToCamel(typedMap)
	assert.EqualValues(t, typedMap, actual)
	assert.EqualValues(t, KindForeign, KindOf(typedMap))
}

func TestTransformer_CustomOptions(t *testing.T) {
	table, err := NewTable(map[string]string{"oAuthToken": "oauth_token"})
	assert.Nil(t, err)
	transformer := New(WithTable(table), WithPreservedKey("rawPayload"))

	assert.EqualValues(t, "oauth_token", transformer.SnakeName("oAuthToken"))
	// default vocabulary no longer applies
	assert.EqualValues(t, "sp_name_i_d_format", transformer.SnakeName("spNameIDFormat"))

	actual := transformer.ToSnake(map[string]any{
		"rawPayload":  map[string]any{"someKey": 1},
		"requestBody": map[string]any{"someKey": 1},
	})
	assert.EqualValues(t, map[string]any{
		"rawPayload":   map[string]any{"someKey": 1},
		"request_body": map[string]any{"some_key": 1},
	}, actual)
}

func TestTransformer_CycleGuard(t *testing.T) {
	cyclic := map[string]any{"user_name": "john"}
	cyclic["self_ref"] = cyclic

	transformer := New(WithCycleGuard())
	actual := transformer.ToCamel(cyclic).(map[string]any)
	assert.EqualValues(t, "john", actual["userName"])
	// the revisited container is passed through unconverted
	assert.Equal(t, any(cyclic), actual["selfRef"])
}

func TestKindOf(t *testing.T) {
	var testCases = []struct {
		description string
		input       any
		expect      Kind
	}{
		{description: "nil", input: nil, expect: KindNull},
		{description: "string", input: "a", expect: KindPrimitive},
		{description: "float", input: 1.5, expect: KindPrimitive},
		{description: "bool", input: true, expect: KindPrimitive},
		{description: "sequence", input: []any{}, expect: KindSequence},
		{description: "object", input: map[string]any{}, expect: KindObject},
		{description: "typed slice", input: []string{}, expect: KindForeign},
		{description: "struct", input: struct{}{}, expect: KindForeign},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, KindOf(testCase.input), testCase.description)
	}
}
