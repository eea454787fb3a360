// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: numveil.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// MaskConfig is an explicit masking configuration. When absent from a
// request, the effective configuration is resolved from the domain's
// stored and static settings.
type MaskConfig struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enabled       bool                   `protobuf:"varint,1,opt,name=enabled,proto3" json:"enabled,omitempty"`
	HideMagnitude bool                   `protobuf:"varint,2,opt,name=hide_magnitude,json=hideMagnitude,proto3" json:"hide_magnitude,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MaskConfig) Reset() {
	*x = MaskConfig{}
	mi := &file_numveil_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MaskConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MaskConfig) ProtoMessage() {}

func (x *MaskConfig) ProtoReflect() protoreflect.Message {
	mi := &file_numveil_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MaskConfig.ProtoReflect.Descriptor instead.
func (*MaskConfig) Descriptor() ([]byte, []int) {
	return file_numveil_proto_rawDescGZIP(), []int{0}
}

func (x *MaskConfig) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

func (x *MaskConfig) GetHideMagnitude() bool {
	if x != nil {
		return x.HideMagnitude
	}
	return false
}

type MaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Domain        string                 `protobuf:"bytes,2,opt,name=domain,proto3" json:"domain,omitempty"`
	Config        *MaskConfig            `protobuf:"bytes,3,opt,name=config,proto3" json:"config,omitempty"`
	Sequence      uint64                 `protobuf:"varint,4,opt,name=sequence,proto3" json:"sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MaskRequest) Reset() {
	*x = MaskRequest{}
	mi := &file_numveil_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MaskRequest) ProtoMessage() {}

func (x *MaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_numveil_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MaskRequest.ProtoReflect.Descriptor instead.
func (*MaskRequest) Descriptor() ([]byte, []int) {
	return file_numveil_proto_rawDescGZIP(), []int{1}
}

func (x *MaskRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *MaskRequest) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *MaskRequest) GetConfig() *MaskConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

func (x *MaskRequest) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

type MaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Masked        string                 `protobuf:"bytes,1,opt,name=masked,proto3" json:"masked,omitempty"`
	Sequence      uint64                 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MaskResponse) Reset() {
	*x = MaskResponse{}
	mi := &file_numveil_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MaskResponse) ProtoMessage() {}

func (x *MaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_numveil_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MaskResponse.ProtoReflect.Descriptor instead.
func (*MaskResponse) Descriptor() ([]byte, []int) {
	return file_numveil_proto_rawDescGZIP(), []int{2}
}

func (x *MaskResponse) GetMasked() string {
	if x != nil {
		return x.Masked
	}
	return ""
}

func (x *MaskResponse) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

var File_numveil_proto protoreflect.FileDescriptor

const file_numveil_proto_rawDesc = "" +
	"\n" +
	"\rnumveil.proto\x12\n" +
	"numveil.v1\"M\n" +
	"\n" +
	"MaskConfig\x12\x18\n" +
	"\aenabled\x18\x01 \x01(\bR\aenabled\x12%\n" +
	"\x0ehide_magnitude\x18\x02 \x01(\bR\rhideMagnitude\"\x85\x01\n" +
	"\vMaskRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x16\n" +
	"\x06domain\x18\x02 \x01(\tR\x06domain\x12.\n" +
	"\x06config\x18\x03 \x01(\v2\x16.numveil.v1.MaskConfigR\x06config\x12\x1a\n" +
	"\bsequence\x18\x04 \x01(\x04R\bsequence\"B\n" +
	"\fMaskResponse\x12\x16\n" +
	"\x06masked\x18\x01 \x01(\tR\x06masked\x12\x1a\n" +
	"\bsequence\x18\x02 \x01(\x04R\bsequence2\x8d\x01\n" +
	"\vMaskService\x129\n" +
	"\x04Mask\x12\x17.numveil.v1.MaskRequest\x1a\x18.numveil.v1.MaskResponse\x12C\n" +
	"\n" +
	"MaskStream\x12\x17.numveil.v1.MaskRequest\x1a\x18.numveil.v1.MaskResponse(\x010\x01B\"Z github.com/numveil/numveil/protob\x06proto3"

var (
	file_numveil_proto_rawDescOnce sync.Once
	file_numveil_proto_rawDescData []byte
)

func file_numveil_proto_rawDescGZIP() []byte {
	file_numveil_proto_rawDescOnce.Do(func() {
		file_numveil_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_numveil_proto_rawDesc), len(file_numveil_proto_rawDesc)))
	})
	return file_numveil_proto_rawDescData
}

var file_numveil_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_numveil_proto_goTypes = []any{
	(*MaskConfig)(nil),   // 0: numveil.v1.MaskConfig
	(*MaskRequest)(nil),  // 1: numveil.v1.MaskRequest
	(*MaskResponse)(nil), // 2: numveil.v1.MaskResponse
}
var file_numveil_proto_depIdxs = []int32{
	0, // 0: numveil.v1.MaskRequest.config:type_name -> numveil.v1.MaskConfig
	1, // 1: numveil.v1.MaskService.Mask:input_type -> numveil.v1.MaskRequest
	1, // 2: numveil.v1.MaskService.MaskStream:input_type -> numveil.v1.MaskRequest
	2, // 3: numveil.v1.MaskService.Mask:output_type -> numveil.v1.MaskResponse
	2, // 4: numveil.v1.MaskService.MaskStream:output_type -> numveil.v1.MaskResponse
	3, // [3:5] is the sub-list for method output_type
	1, // [1:3] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_numveil_proto_init() }
func file_numveil_proto_init() {
	if File_numveil_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_numveil_proto_rawDesc), len(file_numveil_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_numveil_proto_goTypes,
		DependencyIndexes: file_numveil_proto_depIdxs,
		MessageInfos:      file_numveil_proto_msgTypes,
	}.Build()
	File_numveil_proto = out.File
	file_numveil_proto_goTypes = nil
	file_numveil_proto_depIdxs = nil
}
