// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: creation/v1/creation.proto

package creationv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type CreateAppointmentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Date          *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAppointmentRequest) Reset() {
	*x = CreateAppointmentRequest{}
	mi := &file_creation_v1_creation_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAppointmentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAppointmentRequest) ProtoMessage() {}

func (x *CreateAppointmentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_creation_v1_creation_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAppointmentRequest.ProtoReflect.Descriptor instead.
func (*CreateAppointmentRequest) Descriptor() ([]byte, []int) {
	return file_creation_v1_creation_proto_rawDescGZIP(), []int{0}
}

func (x *CreateAppointmentRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *CreateAppointmentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateAppointmentRequest) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

type CreateAppointmentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AppointmentId string                 `protobuf:"bytes,1,opt,name=appointment_id,json=appointmentId,proto3" json:"appointment_id,omitempty"`
	Date          *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"`
	// Empty on success; otherwise a stable denial reason.
	DenialReason  string `protobuf:"bytes,3,opt,name=denial_reason,json=denialReason,proto3" json:"denial_reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAppointmentResponse) Reset() {
	*x = CreateAppointmentResponse{}
	mi := &file_creation_v1_creation_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAppointmentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAppointmentResponse) ProtoMessage() {}

func (x *CreateAppointmentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_creation_v1_creation_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAppointmentResponse.ProtoReflect.Descriptor instead.
func (*CreateAppointmentResponse) Descriptor() ([]byte, []int) {
	return file_creation_v1_creation_proto_rawDescGZIP(), []int{1}
}

func (x *CreateAppointmentResponse) GetAppointmentId() string {
	if x != nil {
		return x.AppointmentId
	}
	return ""
}

func (x *CreateAppointmentResponse) GetDate() *timestamppb.Timestamp {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *CreateAppointmentResponse) GetDenialReason() string {
	if x != nil {
		return x.DenialReason
	}
	return ""
}

var File_creation_v1_creation_proto protoreflect.FileDescriptor

const file_creation_v1_creation_proto_rawDesc = "" +
	"\n" +
	"\x1acreation/v1/creation.proto\x12\vcreation.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x84\x01\n" +
	"\x18CreateAppointmentRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12.\n" +
	"\x04date\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\"\x97\x01\n" +
	"\x19CreateAppointmentResponse\x12%\n" +
	"\x0eappointment_id\x18\x01 \x01(\tR\rappointmentId\x12.\n" +
	"\x04date\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x04date\x12#\n" +
	"\rdenial_reason\x18\x03 \x01(\tR\fdenialReason2u\n" +
	"\x0fCreationService\x12b\n" +
	"\x11CreateAppointment\x12%.creation.v1.CreateAppointmentRequest\x1a&.creation.v1.CreateAppointmentResponseBCZAgithub.com/andrelribeiro/agendo/protos/gen/creation/v1;creationv1b\x06proto3"

var (
	file_creation_v1_creation_proto_rawDescOnce sync.Once
	file_creation_v1_creation_proto_rawDescData []byte
)

func file_creation_v1_creation_proto_rawDescGZIP() []byte {
	file_creation_v1_creation_proto_rawDescOnce.Do(func() {
		file_creation_v1_creation_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_creation_v1_creation_proto_rawDesc), len(file_creation_v1_creation_proto_rawDesc)))
	})
	return file_creation_v1_creation_proto_rawDescData
}

var file_creation_v1_creation_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_creation_v1_creation_proto_goTypes = []any{
	(*CreateAppointmentRequest)(nil),  // 0: creation.v1.CreateAppointmentRequest
	(*CreateAppointmentResponse)(nil), // 1: creation.v1.CreateAppointmentResponse
	(*timestamppb.Timestamp)(nil),     // 2: google.protobuf.Timestamp
}
var file_creation_v1_creation_proto_depIdxs = []int32{
	2, // 0: creation.v1.CreateAppointmentRequest.date:type_name -> google.protobuf.Timestamp
	2, // 1: creation.v1.CreateAppointmentResponse.date:type_name -> google.protobuf.Timestamp
	0, // 2: creation.v1.CreationService.CreateAppointment:input_type -> creation.v1.CreateAppointmentRequest
	1, // 3: creation.v1.CreationService.CreateAppointment:output_type -> creation.v1.CreateAppointmentResponse
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_creation_v1_creation_proto_init() }
func file_creation_v1_creation_proto_init() {
	if File_creation_v1_creation_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_creation_v1_creation_proto_rawDesc), len(file_creation_v1_creation_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_creation_v1_creation_proto_goTypes,
		DependencyIndexes: file_creation_v1_creation_proto_depIdxs,
		MessageInfos:      file_creation_v1_creation_proto_msgTypes,
	}.Build()
	File_creation_v1_creation_proto = out.File
	file_creation_v1_creation_proto_goTypes = nil
	file_creation_v1_creation_proto_depIdxs = nil
}
