// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: sieve/filter/v1/filter_api.proto

package filterv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Action is what a matching filter asks the caller to do with the
// traffic.
type Action int32

const (
	Action_ACTION_UNSPECIFIED Action = 0
	Action_ACTION_ALLOW       Action = 1
	Action_ACTION_BLOCK       Action = 2
	Action_ACTION_LOG         Action = 3
)

// Enum value maps for Action.
var (
	Action_name = map[int32]string{
		0: "ACTION_UNSPECIFIED",
		1: "ACTION_ALLOW",
		2: "ACTION_BLOCK",
		3: "ACTION_LOG",
	}
	Action_value = map[string]int32{
		"ACTION_UNSPECIFIED": 0,
		"ACTION_ALLOW":       1,
		"ACTION_BLOCK":       2,
		"ACTION_LOG":         3,
	}
)

func (x Action) Enum() *Action {
	p := new(Action)
	*p = x
	return p
}

func (x Action) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Action) Descriptor() protoreflect.EnumDescriptor {
	return file_sieve_filter_v1_filter_api_proto_enumTypes[0].Descriptor()
}

func (Action) Type() protoreflect.EnumType {
	return &file_sieve_filter_v1_filter_api_proto_enumTypes[0]
}

func (x Action) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Action.Descriptor instead.
func (Action) EnumDescriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{0}
}

type CheckFilterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Expression string `protobuf:"bytes,1,opt,name=expression,proto3" json:"expression,omitempty"`
}

func (x *CheckFilterRequest) Reset() {
	*x = CheckFilterRequest{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckFilterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckFilterRequest) ProtoMessage() {}

func (x *CheckFilterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckFilterRequest.ProtoReflect.Descriptor instead.
func (*CheckFilterRequest) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{0}
}

func (x *CheckFilterRequest) GetExpression() string {
	if x != nil {
		return x.Expression
	}
	return ""
}

type CheckFilterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Valid bool `protobuf:"varint,1,opt,name=valid,proto3" json:"valid,omitempty"`
	// Populated only when valid is false. Offset and length identify the
	// offending byte span in the expression.
	ErrorMessage string `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ErrorOffset  int32  `protobuf:"varint,3,opt,name=error_offset,json=errorOffset,proto3" json:"error_offset,omitempty"`
	ErrorLength  int32  `protobuf:"varint,4,opt,name=error_length,json=errorLength,proto3" json:"error_length,omitempty"`
}

func (x *CheckFilterResponse) Reset() {
	*x = CheckFilterResponse{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckFilterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckFilterResponse) ProtoMessage() {}

func (x *CheckFilterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckFilterResponse.ProtoReflect.Descriptor instead.
func (*CheckFilterResponse) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{1}
}

func (x *CheckFilterResponse) GetValid() bool {
	if x != nil {
		return x.Valid
	}
	return false
}

func (x *CheckFilterResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *CheckFilterResponse) GetErrorOffset() int32 {
	if x != nil {
		return x.ErrorOffset
	}
	return 0
}

func (x *CheckFilterResponse) GetErrorLength() int32 {
	if x != nil {
		return x.ErrorLength
	}
	return 0
}

type SaveFilterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name       string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Expression string `protobuf:"bytes,2,opt,name=expression,proto3" json:"expression,omitempty"`
	Action     Action `protobuf:"varint,3,opt,name=action,proto3,enum=sieve.filter.v1.Action" json:"action,omitempty"`
	Enabled    bool   `protobuf:"varint,4,opt,name=enabled,proto3" json:"enabled,omitempty"`
}

func (x *SaveFilterRequest) Reset() {
	*x = SaveFilterRequest{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveFilterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveFilterRequest) ProtoMessage() {}

func (x *SaveFilterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveFilterRequest.ProtoReflect.Descriptor instead.
func (*SaveFilterRequest) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{2}
}

func (x *SaveFilterRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SaveFilterRequest) GetExpression() string {
	if x != nil {
		return x.Expression
	}
	return ""
}

func (x *SaveFilterRequest) GetAction() Action {
	if x != nil {
		return x.Action
	}
	return Action_ACTION_UNSPECIFIED
}

func (x *SaveFilterRequest) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

type SaveFilterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	FilterId string `protobuf:"bytes,1,opt,name=filter_id,json=filterId,proto3" json:"filter_id,omitempty"`
}

func (x *SaveFilterResponse) Reset() {
	*x = SaveFilterResponse{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveFilterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveFilterResponse) ProtoMessage() {}

func (x *SaveFilterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveFilterResponse.ProtoReflect.Descriptor instead.
func (*SaveFilterResponse) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{3}
}

func (x *SaveFilterResponse) GetFilterId() string {
	if x != nil {
		return x.FilterId
	}
	return ""
}

type Filter struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	FilterId   string `protobuf:"bytes,1,opt,name=filter_id,json=filterId,proto3" json:"filter_id,omitempty"`
	Name       string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Expression string `protobuf:"bytes,3,opt,name=expression,proto3" json:"expression,omitempty"`
	Action     Action `protobuf:"varint,4,opt,name=action,proto3,enum=sieve.filter.v1.Action" json:"action,omitempty"`
	Enabled    bool   `protobuf:"varint,5,opt,name=enabled,proto3" json:"enabled,omitempty"`
	// False when the filter was saved against a different schema than the
	// server currently runs; such filters never match traffic.
	SchemaCompatible bool                   `protobuf:"varint,6,opt,name=schema_compatible,json=schemaCompatible,proto3" json:"schema_compatible,omitempty"`
	CreatedAt        *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (x *Filter) Reset() {
	*x = Filter{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Filter) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Filter) ProtoMessage() {}

func (x *Filter) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Filter.ProtoReflect.Descriptor instead.
func (*Filter) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{4}
}

func (x *Filter) GetFilterId() string {
	if x != nil {
		return x.FilterId
	}
	return ""
}

func (x *Filter) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Filter) GetExpression() string {
	if x != nil {
		return x.Expression
	}
	return ""
}

func (x *Filter) GetAction() Action {
	if x != nil {
		return x.Action
	}
	return Action_ACTION_UNSPECIFIED
}

func (x *Filter) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

func (x *Filter) GetSchemaCompatible() bool {
	if x != nil {
		return x.SchemaCompatible
	}
	return false
}

func (x *Filter) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ListFiltersRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ListFiltersRequest) Reset() {
	*x = ListFiltersRequest{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFiltersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFiltersRequest) ProtoMessage() {}

func (x *ListFiltersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFiltersRequest.ProtoReflect.Descriptor instead.
func (*ListFiltersRequest) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{5}
}

type ListFiltersResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Filters []*Filter `protobuf:"bytes,1,rep,name=filters,proto3" json:"filters,omitempty"`
}

func (x *ListFiltersResponse) Reset() {
	*x = ListFiltersResponse{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFiltersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFiltersResponse) ProtoMessage() {}

func (x *ListFiltersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFiltersResponse.ProtoReflect.Descriptor instead.
func (*ListFiltersResponse) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{6}
}

func (x *ListFiltersResponse) GetFilters() []*Filter {
	if x != nil {
		return x.Filters
	}
	return nil
}

type DeleteFilterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	FilterId string `protobuf:"bytes,1,opt,name=filter_id,json=filterId,proto3" json:"filter_id,omitempty"`
}

func (x *DeleteFilterRequest) Reset() {
	*x = DeleteFilterRequest{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFilterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFilterRequest) ProtoMessage() {}

func (x *DeleteFilterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFilterRequest.ProtoReflect.Descriptor instead.
func (*DeleteFilterRequest) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteFilterRequest) GetFilterId() string {
	if x != nil {
		return x.FilterId
	}
	return ""
}

type DeleteFilterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *DeleteFilterResponse) Reset() {
	*x = DeleteFilterResponse{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFilterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFilterResponse) ProtoMessage() {}

func (x *DeleteFilterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFilterResponse.ProtoReflect.Descriptor instead.
func (*DeleteFilterResponse) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{8}
}

type EvaluateFilterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	FilterId string `protobuf:"bytes,1,opt,name=filter_id,json=filterId,proto3" json:"filter_id,omitempty"`
	// JSON object keyed by schema field name. Values are converted to the
	// declared field types; a mismatch rejects the request.
	ValuesJson []byte `protobuf:"bytes,2,opt,name=values_json,json=valuesJson,proto3" json:"values_json,omitempty"`
}

func (x *EvaluateFilterRequest) Reset() {
	*x = EvaluateFilterRequest{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluateFilterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluateFilterRequest) ProtoMessage() {}

func (x *EvaluateFilterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluateFilterRequest.ProtoReflect.Descriptor instead.
func (*EvaluateFilterRequest) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{9}
}

func (x *EvaluateFilterRequest) GetFilterId() string {
	if x != nil {
		return x.FilterId
	}
	return ""
}

func (x *EvaluateFilterRequest) GetValuesJson() []byte {
	if x != nil {
		return x.ValuesJson
	}
	return nil
}

type EvaluateFilterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Match bool `protobuf:"varint,1,opt,name=match,proto3" json:"match,omitempty"`
}

func (x *EvaluateFilterResponse) Reset() {
	*x = EvaluateFilterResponse{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluateFilterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluateFilterResponse) ProtoMessage() {}

func (x *EvaluateFilterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluateFilterResponse.ProtoReflect.Descriptor instead.
func (*EvaluateFilterResponse) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{10}
}

func (x *EvaluateFilterResponse) GetMatch() bool {
	if x != nil {
		return x.Match
	}
	return false
}

type MatchTrafficRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ValuesJson []byte `protobuf:"bytes,1,opt,name=values_json,json=valuesJson,proto3" json:"values_json,omitempty"`
}

func (x *MatchTrafficRequest) Reset() {
	*x = MatchTrafficRequest{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchTrafficRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchTrafficRequest) ProtoMessage() {}

func (x *MatchTrafficRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchTrafficRequest.ProtoReflect.Descriptor instead.
func (*MatchTrafficRequest) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{11}
}

func (x *MatchTrafficRequest) GetValuesJson() []byte {
	if x != nil {
		return x.ValuesJson
	}
	return nil
}

type FilterMatch struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	FilterId string `protobuf:"bytes,1,opt,name=filter_id,json=filterId,proto3" json:"filter_id,omitempty"`
	Name     string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Action   Action `protobuf:"varint,3,opt,name=action,proto3,enum=sieve.filter.v1.Action" json:"action,omitempty"`
}

func (x *FilterMatch) Reset() {
	*x = FilterMatch{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FilterMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FilterMatch) ProtoMessage() {}

func (x *FilterMatch) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FilterMatch.ProtoReflect.Descriptor instead.
func (*FilterMatch) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{12}
}

func (x *FilterMatch) GetFilterId() string {
	if x != nil {
		return x.FilterId
	}
	return ""
}

func (x *FilterMatch) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FilterMatch) GetAction() Action {
	if x != nil {
		return x.Action
	}
	return Action_ACTION_UNSPECIFIED
}

type MatchTrafficResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Matches in registry order: created_at ascending, filter_id breaking
	// ties.
	Matches []*FilterMatch `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	// Action of the first matching filter, ACTION_ALLOW when nothing
	// matched.
	Verdict Action `protobuf:"varint,2,opt,name=verdict,proto3,enum=sieve.filter.v1.Action" json:"verdict,omitempty"`
}

func (x *MatchTrafficResponse) Reset() {
	*x = MatchTrafficResponse{}
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchTrafficResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchTrafficResponse) ProtoMessage() {}

func (x *MatchTrafficResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sieve_filter_v1_filter_api_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchTrafficResponse.ProtoReflect.Descriptor instead.
func (*MatchTrafficResponse) Descriptor() ([]byte, []int) {
	return file_sieve_filter_v1_filter_api_proto_rawDescGZIP(), []int{13}
}

func (x *MatchTrafficResponse) GetMatches() []*FilterMatch {
	if x != nil {
		return x.Matches
	}
	return nil
}

func (x *MatchTrafficResponse) GetVerdict() Action {
	if x != nil {
		return x.Verdict
	}
	return Action_ACTION_UNSPECIFIED
}

var File_sieve_filter_v1_filter_api_proto protoreflect.FileDescriptor

var file_sieve_filter_v1_filter_api_proto_rawDesc = []byte{
	0x0a, 0x20, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2f, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2f, 0x76,
	0x31, 0x2f, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x5f, 0x61, 0x70, 0x69, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x0f, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72,
	0x2e, 0x76, 0x31, 0x1a, 0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x22, 0x34, 0x0a, 0x12, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x46, 0x69, 0x6c,
	0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1e, 0x0a, 0x0a, 0x65, 0x78,
	0x70, 0x72, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a,
	0x65, 0x78, 0x70, 0x72, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x22, 0x96, 0x01, 0x0a, 0x13, 0x43,
	0x68, 0x65, 0x63, 0x6b, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x08, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x69, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x65, 0x72, 0x72, 0x6f,
	0x72, 0x5f, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x21, 0x0a,
	0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f, 0x6f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0b, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74,
	0x12, 0x21, 0x0a, 0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f, 0x6c, 0x65, 0x6e, 0x67, 0x74, 0x68,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0b, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x4c, 0x65, 0x6e,
	0x67, 0x74, 0x68, 0x22, 0x92, 0x01, 0x0a, 0x11, 0x53, 0x61, 0x76, 0x65, 0x46, 0x69, 0x6c, 0x74,
	0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x1e, 0x0a,
	0x0a, 0x65, 0x78, 0x70, 0x72, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0a, 0x65, 0x78, 0x70, 0x72, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x12, 0x2f, 0x0a,
	0x06, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x17, 0x2e,
	0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e,
	0x41, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x06, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x18,
	0x0a, 0x07, 0x65, 0x6e, 0x61, 0x62, 0x6c, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x08, 0x52,
	0x07, 0x65, 0x6e, 0x61, 0x62, 0x6c, 0x65, 0x64, 0x22, 0x31, 0x0a, 0x12, 0x53, 0x61, 0x76, 0x65,
	0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1b,
	0x0a, 0x09, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x49, 0x64, 0x22, 0x8c, 0x02, 0x0a, 0x06,
	0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x12, 0x1b, 0x0a, 0x09, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x66, 0x69, 0x6c, 0x74, 0x65,
	0x72, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x65, 0x78, 0x70, 0x72, 0x65,
	0x73, 0x73, 0x69, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x65, 0x78, 0x70,
	0x72, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x12, 0x2f, 0x0a, 0x06, 0x61, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x17, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e,
	0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x63, 0x74, 0x69, 0x6f, 0x6e,
	0x52, 0x06, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x18, 0x0a, 0x07, 0x65, 0x6e, 0x61, 0x62,
	0x6c, 0x65, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x65, 0x6e, 0x61, 0x62, 0x6c,
	0x65, 0x64, 0x12, 0x2b, 0x0a, 0x11, 0x73, 0x63, 0x68, 0x65, 0x6d, 0x61, 0x5f, 0x63, 0x6f, 0x6d,
	0x70, 0x61, 0x74, 0x69, 0x62, 0x6c, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x08, 0x52, 0x10, 0x73,
	0x63, 0x68, 0x65, 0x6d, 0x61, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x74, 0x69, 0x62, 0x6c, 0x65, 0x12,
	0x39, 0x0a, 0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x07, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52,
	0x09, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x22, 0x14, 0x0a, 0x12, 0x4c, 0x69,
	0x73, 0x74, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x22, 0x48, 0x0a, 0x13, 0x4c, 0x69, 0x73, 0x74, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x31, 0x0a, 0x07, 0x66, 0x69, 0x6c, 0x74, 0x65,
	0x72, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65,
	0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x69, 0x6c, 0x74, 0x65,
	0x72, 0x52, 0x07, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x73, 0x22, 0x32, 0x0a, 0x13, 0x44, 0x65,
	0x6c, 0x65, 0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x1b, 0x0a, 0x09, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x49, 0x64, 0x22, 0x16,
	0x0a, 0x14, 0x44, 0x65, 0x6c, 0x65, 0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x55, 0x0a, 0x15, 0x45, 0x76, 0x61, 0x6c, 0x75, 0x61,
	0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x1b, 0x0a, 0x09, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x08, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x49, 0x64, 0x12, 0x1f, 0x0a, 0x0b,
	0x76, 0x61, 0x6c, 0x75, 0x65, 0x73, 0x5f, 0x6a, 0x73, 0x6f, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x0c, 0x52, 0x0a, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x73, 0x4a, 0x73, 0x6f, 0x6e, 0x22, 0x2e, 0x0a,
	0x16, 0x45, 0x76, 0x61, 0x6c, 0x75, 0x61, 0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x6d, 0x61, 0x74, 0x63, 0x68,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x05, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x22, 0x36, 0x0a,
	0x13, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x54, 0x72, 0x61, 0x66, 0x66, 0x69, 0x63, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x1f, 0x0a, 0x0b, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x73, 0x5f, 0x6a,
	0x73, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x0a, 0x76, 0x61, 0x6c, 0x75, 0x65,
	0x73, 0x4a, 0x73, 0x6f, 0x6e, 0x22, 0x6f, 0x0a, 0x0b, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x4d,
	0x61, 0x74, 0x63, 0x68, 0x12, 0x1b, 0x0a, 0x09, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x5f, 0x69,
	0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x49,
	0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x2f, 0x0a, 0x06, 0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x17, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69,
	0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x06,
	0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x22, 0x81, 0x01, 0x0a, 0x14, 0x4d, 0x61, 0x74, 0x63, 0x68,
	0x54, 0x72, 0x61, 0x66, 0x66, 0x69, 0x63, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x36, 0x0a, 0x07, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b,
	0x32, 0x1c, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e,
	0x76, 0x31, 0x2e, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x52, 0x07,
	0x6d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x12, 0x31, 0x0a, 0x07, 0x76, 0x65, 0x72, 0x64, 0x69,
	0x63, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x17, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65,
	0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x63, 0x74, 0x69, 0x6f,
	0x6e, 0x52, 0x07, 0x76, 0x65, 0x72, 0x64, 0x69, 0x63, 0x74, 0x2a, 0x54, 0x0a, 0x06, 0x41, 0x63,
	0x74, 0x69, 0x6f, 0x6e, 0x12, 0x16, 0x0a, 0x12, 0x41, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x55,
	0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x10, 0x0a, 0x0c,
	0x41, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x41, 0x4c, 0x4c, 0x4f, 0x57, 0x10, 0x01, 0x12, 0x10,
	0x0a, 0x0c, 0x41, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x42, 0x4c, 0x4f, 0x43, 0x4b, 0x10, 0x02,
	0x12, 0x0e, 0x0a, 0x0a, 0x41, 0x43, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x4c, 0x4f, 0x47, 0x10, 0x03,
	0x32, 0xb3, 0x04, 0x0a, 0x09, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x41, 0x50, 0x49, 0x12, 0x58,
	0x0a, 0x0b, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x12, 0x23, 0x2e,
	0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e,
	0x43, 0x68, 0x65, 0x63, 0x6b, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x24, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65,
	0x72, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x55, 0x0a, 0x0a, 0x53, 0x61, 0x76, 0x65,
	0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x12, 0x22, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66,
	0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x61, 0x76, 0x65, 0x46, 0x69, 0x6c,
	0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x73, 0x69, 0x65,
	0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x61, 0x76,
	0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x58, 0x0a, 0x0b, 0x4c, 0x69, 0x73, 0x74, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x73, 0x12, 0x23,
	0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31,
	0x2e, 0x4c, 0x69, 0x73, 0x74, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74,
	0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5b, 0x0a, 0x0c, 0x44, 0x65, 0x6c,
	0x65, 0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x12, 0x24, 0x2e, 0x73, 0x69, 0x65, 0x76,
	0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x6c, 0x65,
	0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x25, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76,
	0x31, 0x2e, 0x44, 0x65, 0x6c, 0x65, 0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x61, 0x0a, 0x0e, 0x45, 0x76, 0x61, 0x6c, 0x75, 0x61,
	0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x12, 0x26, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65,
	0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x76, 0x61, 0x6c, 0x75,
	0x61, 0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x27, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e,
	0x76, 0x31, 0x2e, 0x45, 0x76, 0x61, 0x6c, 0x75, 0x61, 0x74, 0x65, 0x46, 0x69, 0x6c, 0x74, 0x65,
	0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5b, 0x0a, 0x0c, 0x4d, 0x61, 0x74,
	0x63, 0x68, 0x54, 0x72, 0x61, 0x66, 0x66, 0x69, 0x63, 0x12, 0x24, 0x2e, 0x73, 0x69, 0x65, 0x76,
	0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x4d, 0x61, 0x74, 0x63,
	0x68, 0x54, 0x72, 0x61, 0x66, 0x66, 0x69, 0x63, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x25, 0x2e, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2e, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x2e, 0x76,
	0x31, 0x2e, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x54, 0x72, 0x61, 0x66, 0x66, 0x69, 0x63, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x45, 0x5a, 0x43, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62,
	0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x73, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x73, 0x2f, 0x73, 0x69, 0x65,
	0x76, 0x65, 0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2f, 0x73, 0x69, 0x65, 0x76, 0x65, 0x2f, 0x66, 0x69, 0x6c, 0x74, 0x65,
	0x72, 0x2f, 0x76, 0x31, 0x3b, 0x66, 0x69, 0x6c, 0x74, 0x65, 0x72, 0x76, 0x31, 0x62, 0x06, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_sieve_filter_v1_filter_api_proto_rawDescOnce sync.Once
	file_sieve_filter_v1_filter_api_proto_rawDescData = file_sieve_filter_v1_filter_api_proto_rawDesc
)

func file_sieve_filter_v1_filter_api_proto_rawDescGZIP() []byte {
	file_sieve_filter_v1_filter_api_proto_rawDescOnce.Do(func() {
		file_sieve_filter_v1_filter_api_proto_rawDescData = protoimpl.X.CompressGZIP(file_sieve_filter_v1_filter_api_proto_rawDescData)
	})
	return file_sieve_filter_v1_filter_api_proto_rawDescData
}

var file_sieve_filter_v1_filter_api_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_sieve_filter_v1_filter_api_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_sieve_filter_v1_filter_api_proto_goTypes = []any{
	(Action)(0),                    // 0: sieve.filter.v1.Action
	(*CheckFilterRequest)(nil),     // 1: sieve.filter.v1.CheckFilterRequest
	(*CheckFilterResponse)(nil),    // 2: sieve.filter.v1.CheckFilterResponse
	(*SaveFilterRequest)(nil),      // 3: sieve.filter.v1.SaveFilterRequest
	(*SaveFilterResponse)(nil),     // 4: sieve.filter.v1.SaveFilterResponse
	(*Filter)(nil),                 // 5: sieve.filter.v1.Filter
	(*ListFiltersRequest)(nil),     // 6: sieve.filter.v1.ListFiltersRequest
	(*ListFiltersResponse)(nil),    // 7: sieve.filter.v1.ListFiltersResponse
	(*DeleteFilterRequest)(nil),    // 8: sieve.filter.v1.DeleteFilterRequest
	(*DeleteFilterResponse)(nil),   // 9: sieve.filter.v1.DeleteFilterResponse
	(*EvaluateFilterRequest)(nil),  // 10: sieve.filter.v1.EvaluateFilterRequest
	(*EvaluateFilterResponse)(nil), // 11: sieve.filter.v1.EvaluateFilterResponse
	(*MatchTrafficRequest)(nil),    // 12: sieve.filter.v1.MatchTrafficRequest
	(*FilterMatch)(nil),            // 13: sieve.filter.v1.FilterMatch
	(*MatchTrafficResponse)(nil),   // 14: sieve.filter.v1.MatchTrafficResponse
	(*timestamppb.Timestamp)(nil),  // 15: google.protobuf.Timestamp
}
var file_sieve_filter_v1_filter_api_proto_depIdxs = []int32{
	0,  // 0: sieve.filter.v1.SaveFilterRequest.action:type_name -> sieve.filter.v1.Action
	0,  // 1: sieve.filter.v1.Filter.action:type_name -> sieve.filter.v1.Action
	15, // 2: sieve.filter.v1.Filter.created_at:type_name -> google.protobuf.Timestamp
	5,  // 3: sieve.filter.v1.ListFiltersResponse.filters:type_name -> sieve.filter.v1.Filter
	0,  // 4: sieve.filter.v1.FilterMatch.action:type_name -> sieve.filter.v1.Action
	13, // 5: sieve.filter.v1.MatchTrafficResponse.matches:type_name -> sieve.filter.v1.FilterMatch
	0,  // 6: sieve.filter.v1.MatchTrafficResponse.verdict:type_name -> sieve.filter.v1.Action
	1,  // 7: sieve.filter.v1.FilterAPI.CheckFilter:input_type -> sieve.filter.v1.CheckFilterRequest
	3,  // 8: sieve.filter.v1.FilterAPI.SaveFilter:input_type -> sieve.filter.v1.SaveFilterRequest
	6,  // 9: sieve.filter.v1.FilterAPI.ListFilters:input_type -> sieve.filter.v1.ListFiltersRequest
	8,  // 10: sieve.filter.v1.FilterAPI.DeleteFilter:input_type -> sieve.filter.v1.DeleteFilterRequest
	10, // 11: sieve.filter.v1.FilterAPI.EvaluateFilter:input_type -> sieve.filter.v1.EvaluateFilterRequest
	12, // 12: sieve.filter.v1.FilterAPI.MatchTraffic:input_type -> sieve.filter.v1.MatchTrafficRequest
	2,  // 13: sieve.filter.v1.FilterAPI.CheckFilter:output_type -> sieve.filter.v1.CheckFilterResponse
	4,  // 14: sieve.filter.v1.FilterAPI.SaveFilter:output_type -> sieve.filter.v1.SaveFilterResponse
	7,  // 15: sieve.filter.v1.FilterAPI.ListFilters:output_type -> sieve.filter.v1.ListFiltersResponse
	9,  // 16: sieve.filter.v1.FilterAPI.DeleteFilter:output_type -> sieve.filter.v1.DeleteFilterResponse
	11, // 17: sieve.filter.v1.FilterAPI.EvaluateFilter:output_type -> sieve.filter.v1.EvaluateFilterResponse
	14, // 18: sieve.filter.v1.FilterAPI.MatchTraffic:output_type -> sieve.filter.v1.MatchTrafficResponse
	13, // [13:19] is the sub-list for method output_type
	7,  // [7:13] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_sieve_filter_v1_filter_api_proto_init() }
func file_sieve_filter_v1_filter_api_proto_init() {
	if File_sieve_filter_v1_filter_api_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_sieve_filter_v1_filter_api_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sieve_filter_v1_filter_api_proto_goTypes,
		DependencyIndexes: file_sieve_filter_v1_filter_api_proto_depIdxs,
		EnumInfos:         file_sieve_filter_v1_filter_api_proto_enumTypes,
		MessageInfos:      file_sieve_filter_v1_filter_api_proto_msgTypes,
	}.Build()
	File_sieve_filter_v1_filter_api_proto = out.File
	file_sieve_filter_v1_filter_api_proto_rawDesc = nil
	file_sieve_filter_v1_filter_api_proto_goTypes = nil
	file_sieve_filter_v1_filter_api_proto_depIdxs = nil
}
