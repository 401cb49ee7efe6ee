// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: curator/v1/curator.proto

package curatorv1

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

type JobStatus int32

const (
	JobStatus_JOB_STATUS_UNSPECIFIED       JobStatus = 0
	JobStatus_JOB_STATUS_PENDING           JobStatus = 1
	JobStatus_JOB_STATUS_EMBEDDING         JobStatus = 2
	JobStatus_JOB_STATUS_AWAITING_FEEDBACK JobStatus = 3
	JobStatus_JOB_STATUS_COMPLETED         JobStatus = 4
	JobStatus_JOB_STATUS_FAILED            JobStatus = 5
)

// Enum value maps for JobStatus.
var (
	JobStatus_name = map[int32]string{
		0: "JOB_STATUS_UNSPECIFIED",
		1: "JOB_STATUS_PENDING",
		2: "JOB_STATUS_EMBEDDING",
		3: "JOB_STATUS_AWAITING_FEEDBACK",
		4: "JOB_STATUS_COMPLETED",
		5: "JOB_STATUS_FAILED",
	}
	JobStatus_value = map[string]int32{
		"JOB_STATUS_UNSPECIFIED":       0,
		"JOB_STATUS_PENDING":           1,
		"JOB_STATUS_EMBEDDING":         2,
		"JOB_STATUS_AWAITING_FEEDBACK": 3,
		"JOB_STATUS_COMPLETED":         4,
		"JOB_STATUS_FAILED":            5,
	}
)

func (x JobStatus) Enum() *JobStatus {
	p := new(JobStatus)
	*p = x
	return p
}

func (x JobStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (JobStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_curator_v1_curator_proto_enumTypes[0].Descriptor()
}

func (JobStatus) Type() protoreflect.EnumType {
	return &file_curator_v1_curator_proto_enumTypes[0]
}

func (x JobStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use JobStatus.Descriptor instead.
func (JobStatus) EnumDescriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{0}
}

type StartCurationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	RawDataUri    string                 `protobuf:"bytes,2,opt,name=raw_data_uri,json=rawDataUri,proto3" json:"raw_data_uri,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartCurationRequest) Reset() {
	*x = StartCurationRequest{}
	mi := &file_curator_v1_curator_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartCurationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartCurationRequest) ProtoMessage() {}

func (x *StartCurationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartCurationRequest.ProtoReflect.Descriptor instead.
func (*StartCurationRequest) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{0}
}

func (x *StartCurationRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *StartCurationRequest) GetRawDataUri() string {
	if x != nil {
		return x.RawDataUri
	}
	return ""
}

type StartCurationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CurationJobId string                 `protobuf:"bytes,1,opt,name=curation_job_id,json=curationJobId,proto3" json:"curation_job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartCurationResponse) Reset() {
	*x = StartCurationResponse{}
	mi := &file_curator_v1_curator_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartCurationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartCurationResponse) ProtoMessage() {}

func (x *StartCurationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartCurationResponse.ProtoReflect.Descriptor instead.
func (*StartCurationResponse) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{1}
}

func (x *StartCurationResponse) GetCurationJobId() string {
	if x != nil {
		return x.CurationJobId
	}
	return ""
}

type GetCurationStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CurationJobId string                 `protobuf:"bytes,1,opt,name=curation_job_id,json=curationJobId,proto3" json:"curation_job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCurationStatusRequest) Reset() {
	*x = GetCurationStatusRequest{}
	mi := &file_curator_v1_curator_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCurationStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCurationStatusRequest) ProtoMessage() {}

func (x *GetCurationStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCurationStatusRequest.ProtoReflect.Descriptor instead.
func (*GetCurationStatusRequest) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{2}
}

func (x *GetCurationStatusRequest) GetCurationJobId() string {
	if x != nil {
		return x.CurationJobId
	}
	return ""
}

type ImageForFeedback struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageId       string                 `protobuf:"bytes,1,opt,name=image_id,json=imageId,proto3" json:"image_id,omitempty"`
	ImageUri      string                 `protobuf:"bytes,2,opt,name=image_uri,json=imageUri,proto3" json:"image_uri,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImageForFeedback) Reset() {
	*x = ImageForFeedback{}
	mi := &file_curator_v1_curator_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImageForFeedback) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImageForFeedback) ProtoMessage() {}

func (x *ImageForFeedback) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImageForFeedback.ProtoReflect.Descriptor instead.
func (*ImageForFeedback) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{3}
}

func (x *ImageForFeedback) GetImageId() string {
	if x != nil {
		return x.ImageId
	}
	return ""
}

func (x *ImageForFeedback) GetImageUri() string {
	if x != nil {
		return x.ImageUri
	}
	return ""
}

type CurationStatusResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	CurationJobId     string                 `protobuf:"bytes,1,opt,name=curation_job_id,json=curationJobId,proto3" json:"curation_job_id,omitempty"`
	Status            JobStatus              `protobuf:"varint,2,opt,name=status,proto3,enum=curator.v1.JobStatus" json:"status,omitempty"`
	ImagesForFeedback []*ImageForFeedback    `protobuf:"bytes,3,rep,name=images_for_feedback,json=imagesForFeedback,proto3" json:"images_for_feedback,omitempty"`
	CuratedDatasetUri string                 `protobuf:"bytes,4,opt,name=curated_dataset_uri,json=curatedDatasetUri,proto3" json:"curated_dataset_uri,omitempty"`
	ErrorMessage      string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *CurationStatusResponse) Reset() {
	*x = CurationStatusResponse{}
	mi := &file_curator_v1_curator_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CurationStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CurationStatusResponse) ProtoMessage() {}

func (x *CurationStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CurationStatusResponse.ProtoReflect.Descriptor instead.
func (*CurationStatusResponse) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{4}
}

func (x *CurationStatusResponse) GetCurationJobId() string {
	if x != nil {
		return x.CurationJobId
	}
	return ""
}

func (x *CurationStatusResponse) GetStatus() JobStatus {
	if x != nil {
		return x.Status
	}
	return JobStatus_JOB_STATUS_UNSPECIFIED
}

func (x *CurationStatusResponse) GetImagesForFeedback() []*ImageForFeedback {
	if x != nil {
		return x.ImagesForFeedback
	}
	return nil
}

func (x *CurationStatusResponse) GetCuratedDatasetUri() string {
	if x != nil {
		return x.CuratedDatasetUri
	}
	return ""
}

func (x *CurationStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type Feedback struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageId       string                 `protobuf:"bytes,1,opt,name=image_id,json=imageId,proto3" json:"image_id,omitempty"`
	Accepted      bool                   `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Feedback) Reset() {
	*x = Feedback{}
	mi := &file_curator_v1_curator_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Feedback) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Feedback) ProtoMessage() {}

func (x *Feedback) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Feedback.ProtoReflect.Descriptor instead.
func (*Feedback) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{5}
}

func (x *Feedback) GetImageId() string {
	if x != nil {
		return x.ImageId
	}
	return ""
}

func (x *Feedback) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type SubmitFeedbackRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CurationJobId string                 `protobuf:"bytes,1,opt,name=curation_job_id,json=curationJobId,proto3" json:"curation_job_id,omitempty"`
	Feedback      []*Feedback            `protobuf:"bytes,2,rep,name=feedback,proto3" json:"feedback,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitFeedbackRequest) Reset() {
	*x = SubmitFeedbackRequest{}
	mi := &file_curator_v1_curator_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitFeedbackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitFeedbackRequest) ProtoMessage() {}

func (x *SubmitFeedbackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitFeedbackRequest.ProtoReflect.Descriptor instead.
func (*SubmitFeedbackRequest) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitFeedbackRequest) GetCurationJobId() string {
	if x != nil {
		return x.CurationJobId
	}
	return ""
}

func (x *SubmitFeedbackRequest) GetFeedback() []*Feedback {
	if x != nil {
		return x.Feedback
	}
	return nil
}

type SubmitFeedbackResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Acknowledged  bool                   `protobuf:"varint,1,opt,name=acknowledged,proto3" json:"acknowledged,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitFeedbackResponse) Reset() {
	*x = SubmitFeedbackResponse{}
	mi := &file_curator_v1_curator_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitFeedbackResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitFeedbackResponse) ProtoMessage() {}

func (x *SubmitFeedbackResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitFeedbackResponse.ProtoReflect.Descriptor instead.
func (*SubmitFeedbackResponse) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitFeedbackResponse) GetAcknowledged() bool {
	if x != nil {
		return x.Acknowledged
	}
	return false
}

type ListCurationJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCurationJobsRequest) Reset() {
	*x = ListCurationJobsRequest{}
	mi := &file_curator_v1_curator_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCurationJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCurationJobsRequest) ProtoMessage() {}

func (x *ListCurationJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCurationJobsRequest.ProtoReflect.Descriptor instead.
func (*ListCurationJobsRequest) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{8}
}

func (x *ListCurationJobsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListCurationJobsResponse struct {
	state         protoimpl.MessageState    `protogen:"open.v1"`
	Jobs          []*CurationStatusResponse `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCurationJobsResponse) Reset() {
	*x = ListCurationJobsResponse{}
	mi := &file_curator_v1_curator_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCurationJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCurationJobsResponse) ProtoMessage() {}

func (x *ListCurationJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_curator_v1_curator_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCurationJobsResponse.ProtoReflect.Descriptor instead.
func (*ListCurationJobsResponse) Descriptor() ([]byte, []int) {
	return file_curator_v1_curator_proto_rawDescGZIP(), []int{9}
}

func (x *ListCurationJobsResponse) GetJobs() []*CurationStatusResponse {
	if x != nil {
		return x.Jobs
	}
	return nil
}

var File_curator_v1_curator_proto protoreflect.FileDescriptor

const file_curator_v1_curator_proto_rawDesc = "" +
	"\n" +
	"\x18curator/v1/curator.proto\x12\n" +
	"curator.v1\"W\n" +
	"\x14StartCurationRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12 \n" +
	"\fraw_data_uri\x18\x02 \x01(\tR\n" +
	"rawDataUri\"?\n" +
	"\x15StartCurationResponse\x12&\n" +
	"\x0fcuration_job_id\x18\x01 \x01(\tR\rcurationJobId\"B\n" +
	"\x18GetCurationStatusRequest\x12&\n" +
	"\x0fcuration_job_id\x18\x01 \x01(\tR\rcurationJobId\"J\n" +
	"\x10ImageForFeedback\x12\x19\n" +
	"\bimage_id\x18\x01 \x01(\tR\aimageId\x12\x1b\n" +
	"\timage_uri\x18\x02 \x01(\tR\bimageUri\"\x92\x02\n" +
	"\x16CurationStatusResponse\x12&\n" +
	"\x0fcuration_job_id\x18\x01 \x01(\tR\rcurationJobId\x12-\n" +
	"\x06status\x18\x02 \x01(\x0e2\x15.curator.v1.JobStatusR\x06status\x12L\n" +
	"\x13images_for_feedback\x18\x03 \x03(\v2\x1c.curator.v1.ImageForFeedbackR\x11imagesForFeedback\x12.\n" +
	"\x13curated_dataset_uri\x18\x04 \x01(\tR\x11curatedDatasetUri\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\"A\n" +
	"\bFeedback\x12\x19\n" +
	"\bimage_id\x18\x01 \x01(\tR\aimageId\x12\x1a\n" +
	"\baccepted\x18\x02 \x01(\bR\baccepted\"q\n" +
	"\x15SubmitFeedbackRequest\x12&\n" +
	"\x0fcuration_job_id\x18\x01 \x01(\tR\rcurationJobId\x120\n" +
	"\bfeedback\x18\x02 \x03(\v2\x14.curator.v1.FeedbackR\bfeedback\"<\n" +
	"\x16SubmitFeedbackResponse\x12\"\n" +
	"\facknowledged\x18\x01 \x01(\bR\facknowledged\"8\n" +
	"\x17ListCurationJobsRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"R\n" +
	"\x18ListCurationJobsResponse\x126\n" +
	"\x04jobs\x18\x01 \x03(\v2\".curator.v1.CurationStatusResponseR\x04jobs*\xac\x01\n" +
	"\tJobStatus\x12\x1a\n" +
	"\x16JOB_STATUS_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12JOB_STATUS_PENDING\x10\x01\x12\x18\n" +
	"\x14JOB_STATUS_EMBEDDING\x10\x02\x12 \n" +
	"\x1cJOB_STATUS_AWAITING_FEEDBACK\x10\x03\x12\x18\n" +
	"\x14JOB_STATUS_COMPLETED\x10\x04\x12\x15\n" +
	"\x11JOB_STATUS_FAILED\x10\x052\xfd\x02\n" +
	"\x0eCuratorService\x12T\n" +
	"\rStartCuration\x12 .curator.v1.StartCurationRequest\x1a!.curator.v1.StartCurationResponse\x12]\n" +
	"\x11GetCurationStatus\x12$.curator.v1.GetCurationStatusRequest\x1a\".curator.v1.CurationStatusResponse\x12W\n" +
	"\x0eSubmitFeedback\x12!.curator.v1.SubmitFeedbackRequest\x1a\".curator.v1.SubmitFeedbackResponse\x12]\n" +
	"\x10ListCurationJobs\x12#.curator.v1.ListCurationJobsRequest\x1a$.curator.v1.ListCurationJobsResponseBDZBgithub.com/meridian-ml/data-curator/gen/proto/curator/v1;curatorv1b\x06proto3"

var (
	file_curator_v1_curator_proto_rawDescOnce sync.Once
	file_curator_v1_curator_proto_rawDescData []byte
)

func file_curator_v1_curator_proto_rawDescGZIP() []byte {
	file_curator_v1_curator_proto_rawDescOnce.Do(func() {
		file_curator_v1_curator_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_curator_v1_curator_proto_rawDesc), len(file_curator_v1_curator_proto_rawDesc)))
	})
	return file_curator_v1_curator_proto_rawDescData
}

var file_curator_v1_curator_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_curator_v1_curator_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_curator_v1_curator_proto_goTypes = []any{
	(JobStatus)(0),                   // 0: curator.v1.JobStatus
	(*StartCurationRequest)(nil),     // 1: curator.v1.StartCurationRequest
	(*StartCurationResponse)(nil),    // 2: curator.v1.StartCurationResponse
	(*GetCurationStatusRequest)(nil), // 3: curator.v1.GetCurationStatusRequest
	(*ImageForFeedback)(nil),         // 4: curator.v1.ImageForFeedback
	(*CurationStatusResponse)(nil),   // 5: curator.v1.CurationStatusResponse
	(*Feedback)(nil),                 // 6: curator.v1.Feedback
	(*SubmitFeedbackRequest)(nil),    // 7: curator.v1.SubmitFeedbackRequest
	(*SubmitFeedbackResponse)(nil),   // 8: curator.v1.SubmitFeedbackResponse
	(*ListCurationJobsRequest)(nil),  // 9: curator.v1.ListCurationJobsRequest
	(*ListCurationJobsResponse)(nil), // 10: curator.v1.ListCurationJobsResponse
}
var file_curator_v1_curator_proto_depIdxs = []int32{
	0,  // 0: curator.v1.CurationStatusResponse.status:type_name -> curator.v1.JobStatus
	4,  // 1: curator.v1.CurationStatusResponse.images_for_feedback:type_name -> curator.v1.ImageForFeedback
	6,  // 2: curator.v1.SubmitFeedbackRequest.feedback:type_name -> curator.v1.Feedback
	5,  // 3: curator.v1.ListCurationJobsResponse.jobs:type_name -> curator.v1.CurationStatusResponse
	1,  // 4: curator.v1.CuratorService.StartCuration:input_type -> curator.v1.StartCurationRequest
	3,  // 5: curator.v1.CuratorService.GetCurationStatus:input_type -> curator.v1.GetCurationStatusRequest
	7,  // 6: curator.v1.CuratorService.SubmitFeedback:input_type -> curator.v1.SubmitFeedbackRequest
	9,  // 7: curator.v1.CuratorService.ListCurationJobs:input_type -> curator.v1.ListCurationJobsRequest
	2,  // 8: curator.v1.CuratorService.StartCuration:output_type -> curator.v1.StartCurationResponse
	5,  // 9: curator.v1.CuratorService.GetCurationStatus:output_type -> curator.v1.CurationStatusResponse
	8,  // 10: curator.v1.CuratorService.SubmitFeedback:output_type -> curator.v1.SubmitFeedbackResponse
	10, // 11: curator.v1.CuratorService.ListCurationJobs:output_type -> curator.v1.ListCurationJobsResponse
	8,  // [8:12] is the sub-list for method output_type
	4,  // [4:8] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_curator_v1_curator_proto_init() }
func file_curator_v1_curator_proto_init() {
	if File_curator_v1_curator_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_curator_v1_curator_proto_rawDesc), len(file_curator_v1_curator_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_curator_v1_curator_proto_goTypes,
		DependencyIndexes: file_curator_v1_curator_proto_depIdxs,
		EnumInfos:         file_curator_v1_curator_proto_enumTypes,
		MessageInfos:      file_curator_v1_curator_proto_msgTypes,
	}.Build()
	File_curator_v1_curator_proto = out.File
	file_curator_v1_curator_proto_goTypes = nil
	file_curator_v1_curator_proto_depIdxs = nil
}
